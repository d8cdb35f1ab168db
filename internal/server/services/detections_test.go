package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blustick/blustick-api/internal/common"
	"github.com/blustick/blustick-api/internal/logging"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newDetectionService(t *testing.T) (*DetectionService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDetectionService(db, repomanager.NewPostgresRepositoryManager(), testLogger()), mock
}

func rawBatch(t *testing.T, elements ...string) []json.RawMessage {
	t.Helper()
	batch := make([]json.RawMessage, len(elements))
	for i, e := range elements {
		batch[i] = json.RawMessage(e)
	}
	return batch
}

func TestIngest_EmptyBatch(t *testing.T) {
	svc, mock := newDetectionService(t)

	_, err := svc.Ingest(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrEmptyBatch)
	require.NoError(t, mock.ExpectationsWereMet(), "no store call may be attempted")
}

func TestIngest_Success(t *testing.T) {
	svc, mock := newDetectionService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+detections`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := svc.Ingest(context.Background(), rawBatch(t,
		`{"mac_address":"AA:BB:CC:DD:EE:01","signal_type":"ble","rssi":-40}`,
		`{"mac_address":null,"latitude":47.5,"longitude":19.04}`,
	))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIngest_InvalidElementAbortsBeforeStore(t *testing.T) {
	svc, mock := newDetectionService(t)

	// second element's mac_address has the wrong type
	_, err := svc.Ingest(context.Background(), rawBatch(t,
		`{"mac_address":"AA:BB"}`,
		`{"mac_address":123}`,
	))
	require.ErrorIs(t, err, common.ErrInvalidPayload)
	require.NoError(t, mock.ExpectationsWereMet(), "no store call may be attempted")
}

func TestIngest_CountMismatchRollsBack(t *testing.T) {
	svc, mock := newDetectionService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+detections`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := svc.Ingest(context.Background(), rawBatch(t,
		`{"mac_address":"AA:BB"}`,
		`{"mac_address":"CC:DD"}`,
	))
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIngest_StorageErrorRollsBack(t *testing.T) {
	svc, mock := newDetectionService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+detections`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := svc.Ingest(context.Background(), rawBatch(t, `{"mac_address":"AA:BB"}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrInvalidPayload)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParseDetection(t *testing.T) {
	eventID := "71b5e534-9aa1-4e46-9793-1d0b1e1f77a2"

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"all fields", `{"event_id":"` + eventID + `","mac_address":"AA:BB","signal_type":"wifi","rssi":-55,"estimated_distance":2.5,"latitude":47.5,"longitude":19.04,"detected_at":"2026-08-30T10:00:00Z"}`, false},
		{"mac only", `{"mac_address":"AA:BB"}`, false},
		{"mac null allowed", `{"mac_address":null}`, false},
		{"all optionals null", `{"event_id":null,"mac_address":null,"signal_type":null,"rssi":null,"estimated_distance":null,"latitude":null,"longitude":null}`, false},
		{"mac key missing", `{"rssi":-40}`, true},
		{"mac wrong type", `{"mac_address":123}`, true},
		{"event_id not a uuid", `{"mac_address":"AA:BB","event_id":"not-a-uuid"}`, true},
		{"rssi wrong type", `{"mac_address":"AA:BB","rssi":"loud"}`, true},
		{"latitude wrong type", `{"mac_address":"AA:BB","latitude":"north"}`, true},
		{"detected_at null rejected", `{"mac_address":"AA:BB","detected_at":null}`, true},
		{"detected_at not a timestamp", `{"mac_address":"AA:BB","detected_at":"yesterday"}`, true},
		{"element not an object", `[1,2,3]`, true},
		{"unknown fields ignored", `{"mac_address":"AA:BB","firmware":"v3"}`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseDetection(json.RawMessage(tc.in))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseDetection_Normalization(t *testing.T) {
	t.Run("all fields carried over", func(t *testing.T) {
		d, err := parseDetection(json.RawMessage(
			`{"event_id":"71b5e534-9aa1-4e46-9793-1d0b1e1f77a2","mac_address":"AA:BB","signal_type":"ble","rssi":-40,"estimated_distance":1.5,"latitude":47.5,"longitude":19.04,"detected_at":"2026-08-30T10:00:00Z"}`))
		require.NoError(t, err)
		assert.Equal(t, "71b5e534-9aa1-4e46-9793-1d0b1e1f77a2", *d.EventID)
		assert.Equal(t, "AA:BB", *d.MACAddress)
		assert.Equal(t, "ble", *d.SignalType)
		assert.Equal(t, -40.0, *d.RSSI)
		assert.Equal(t, 1.5, *d.EstimatedDistance)
		assert.Equal(t, 47.5, *d.Latitude)
		assert.Equal(t, 19.04, *d.Longitude)
		assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), d.DetectedAt)
	})

	t.Run("missing optionals become explicit nils", func(t *testing.T) {
		d, err := parseDetection(json.RawMessage(`{"mac_address":"AA:BB"}`))
		require.NoError(t, err)
		assert.Nil(t, d.EventID)
		assert.Nil(t, d.SignalType)
		assert.Nil(t, d.RSSI)
		assert.Nil(t, d.EstimatedDistance)
		assert.Nil(t, d.Latitude)
		assert.Nil(t, d.Longitude)
	})

	t.Run("absent detected_at defaults to processing time", func(t *testing.T) {
		before := time.Now().UTC()
		d, err := parseDetection(json.RawMessage(`{"mac_address":"AA:BB"}`))
		require.NoError(t, err)
		after := time.Now().UTC()
		assert.False(t, d.DetectedAt.Before(before))
		assert.False(t, d.DetectedAt.After(after))
	})
}

func TestDetectionList_ClampsLimit(t *testing.T) {
	svc, mock := newDetectionService(t)

	mock.ExpectQuery(`(?s)^SELECT\s+blustick_id`).WithArgs(1000).
		WillReturnRows(sqlmock.NewRows([]string{
			"blustick_id", "event_id", "mac_address", "signal_type", "rssi",
			"estimated_distance", "latitude", "longitude", "detected_at",
		}))

	_, err := svc.List(context.Background(), nil, 9999)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
