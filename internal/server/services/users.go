package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blustick/blustick-api/internal/common"
	"github.com/blustick/blustick-api/internal/logging"
	"github.com/blustick/blustick-api/internal/server/auth"
	"github.com/blustick/blustick-api/internal/server/config"
	"github.com/blustick/blustick-api/internal/server/models"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
)

// UserService handles login: it verifies credentials against the profile
// store and mints bearer tokens.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		logger:                l.With("module", "users"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the supplied password against the stored credential and, on
// success, returns a signed token plus the profile. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)
	profile, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "profile lookup failed", "error", err.Error())
		return "", nil, common.ErrorInternal
	}

	if !s.checkPassword(ctx, profile.PasswordHash, password) {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(profile.ID, profile.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err.Error())
		return "", nil, common.ErrorInternal
	}

	return token, profile, nil
}

// checkPassword compares the candidate against a bcrypt hash. Rows seeded
// before the hash migration still hold plaintext; those fall back to a
// constant-time equality check and are reported so operators can rehash them.
func (s *UserService) checkPassword(ctx context.Context, stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}

	s.logger.Warn(ctx, "profile still uses a plaintext credential, rehash recommended")
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
