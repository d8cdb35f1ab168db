package repomanager

import (
	"context"
	"database/sql"

	"github.com/blustick/blustick-api/internal/dbx"
	"github.com/blustick/blustick-api/internal/server/repositories/detections"
	"github.com/blustick/blustick-api/internal/server/repositories/devices"
	"github.com/blustick/blustick-api/internal/server/repositories/events"
	"github.com/blustick/blustick-api/internal/server/repositories/observations"
	"github.com/blustick/blustick-api/internal/server/repositories/profiles"
	"github.com/blustick/blustick-api/internal/server/repositories/questionnaires"
)

// RepositoryManager vends repository implementations bound to a DBTX, so a
// service can use the same repository code against the pooled *sql.DB or a
// *sql.Tx inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Profiles(db dbx.DBTX) profiles.Repository
	Events(db dbx.DBTX) events.Repository
	Detections(db dbx.DBTX) detections.Repository
	Devices(db dbx.DBTX) devices.Repository
	Observations(db dbx.DBTX) observations.Repository
	Questionnaires(db dbx.DBTX) questionnaires.Repository
}
