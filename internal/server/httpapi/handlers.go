package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blustick/blustick-api/internal/common"
	"github.com/blustick/blustick-api/internal/server/repositories/questionnaires"
)

type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true, Service: "blustick-api"})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	token, profile, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: profile.ID, Username: profile.Username},
	})
}

type meResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing token")
		return
	}
	writeJSON(w, http.StatusOK, meResponse{UserID: claims.Subject, Username: claims.Username})
}

// parseLimit reads the limit query parameter. Absent, non-numeric and
// non-positive values all come back as 0 so the service layer applies the
// endpoint's default.
func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}

func (s *HTTPServer) handleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.queryContext(r)
	defer cancel()

	rows, err := s.catalog.ListEvents(ctx, parseLimit(r))
	if err != nil {
		s.logger.Error(ctx, "listing events failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *HTTPServer) handleListDetections(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.queryContext(r)
	defer cancel()

	var eventID *string
	if v := r.URL.Query().Get("event_id"); v != "" {
		eventID = &v
	}

	rows, err := s.detections.List(ctx, eventID, parseLimit(r))
	if err != nil {
		s.logger.Error(ctx, "listing detections failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type insertedResponse struct {
	Inserted int64 `json:"inserted"`
}

func (s *HTTPServer) handleBulkDetections(w http.ResponseWriter, r *http.Request) {
	var batch []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil || len(batch) == 0 {
		writeError(w, http.StatusBadRequest, "Body must be a non-empty array")
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	inserted, err := s.detections.Ingest(ctx, batch)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyBatch):
			writeError(w, http.StatusBadRequest, "Body must be a non-empty array")
		case errors.Is(err, common.ErrInvalidPayload):
			writeError(w, http.StatusBadRequest, "Invalid detection payload")
		default:
			s.logger.Error(ctx, "detection batch insert failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "Failed to insert detections")
		}
		return
	}

	writeJSON(w, http.StatusOK, insertedResponse{Inserted: inserted})
}

func (s *HTTPServer) handleListDevices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.queryContext(r)
	defer cancel()

	rows, err := s.catalog.ListDevices(ctx)
	if err != nil {
		s.logger.Error(ctx, "listing devices failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *HTTPServer) handleListObservations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.queryContext(r)
	defer cancel()

	rows, err := s.observations.List(ctx, parseLimit(r))
	if err != nil {
		s.logger.Error(ctx, "listing observations failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type observationRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Details  string `json:"observation_details" validate:"required"`
}

func (s *HTTPServer) handleCreateObservation(w http.ResponseWriter, r *http.Request) {
	var req observationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid observation payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid observation payload")
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	created, err := s.observations.Create(ctx, req.FullName, req.Details)
	if err != nil {
		s.logger.Error(ctx, "creating observation failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to create observation")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *HTTPServer) handleListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.queryContext(r)
	defer cancel()

	rows, err := s.questionnaires.List(ctx, parseLimit(r))
	if err != nil {
		s.logger.Error(ctx, "listing questionnaire responses failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

type questionnaireRequest struct {
	Respondent string `json:"respondent" validate:"required"`
	Q1         string `json:"q1" validate:"required"`
	Q2         string `json:"q2" validate:"required"`
	Q3         string `json:"q3" validate:"required"`
	Q4         string `json:"q4" validate:"required"`
	Q5         string `json:"q5" validate:"required"`
}

func (s *HTTPServer) handleCreateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req questionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid questionnaire payload")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid questionnaire payload")
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	created, err := s.questionnaires.Create(ctx, questionnaires.Answers{
		Respondent: req.Respondent,
		Q1:         req.Q1,
		Q2:         req.Q2,
		Q3:         req.Q3,
		Q4:         req.Q4,
		Q5:         req.Q5,
	})
	if err != nil {
		s.logger.Error(ctx, "creating questionnaire response failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to create questionnaire response")
		return
	}
	writeJSON(w, http.StatusOK, created)
}
