package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/educreate/srs-service/internal/auth/middleware"
	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionService defines methods for learning session business logic
type SessionService interface {
	// CreateSession starts a new learning session and selects its word list.
	//
	// "userID" parameter is used to identify the user.
	// "level" parameter is used to identify the GEPT level.
	// "wordIDs" parameter, when non-empty, pins the session to a curated word list.
	// "count" parameter is used to bound the number of selected words; zero applies the default.
	// If the user does not exist, services.ErrUserNotFound will be returned.
	// If some word ID does not exist, services.ErrInvalidWordIDs will be returned.
	CreateSession(ctx context.Context, userID int, level models.GEPTLevel, wordIDs []int, count int) (*models.SessionWithWords, error)
	// FinishSession records the final totals of a session.
	//
	// "userID" parameter is used to identify the session owner.
	// "sessionID" parameter is used to identify the session.
	// "result" parameter carries the final answer totals and duration.
	// Finishing an already finished session is a no-op.
	// If the session does not exist or belongs to another user, services.ErrSessionNotFound will be returned.
	FinishSession(ctx context.Context, userID, sessionID int, result models.SessionResult) error
}

// SessionHandler handles learning session endpoints
type SessionHandler struct {
	BaseHandler
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// CreateSessionRequest represents a session creation request
type CreateSessionRequest struct {
	GeptLevel string `json:"geptLevel"`
	WordIDs   []int  `json:"wordIds,omitempty"`
	WordCount int    `json:"wordCount,omitempty"`
}

// FinishSessionRequest represents a session finalization request
type FinishSessionRequest struct {
	CorrectAnswers int `json:"correctAnswers"`
	TotalAnswers   int `json:"totalAnswers"`
	Duration       int `json:"duration"`
}

// RegisterRoutes registers all session handler routes
func (h *SessionHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/sessions", func(r chi.Router) {
		// Apply auth middleware to all session routes
		r.Use(authMiddleware)
		r.Post("/", h.CreateSession)
		r.Patch("/{id}", h.FinishSession)
	})
}

// CreateSession handles POST /api/v1/srs/sessions
// @Summary Start a learning session
// @Description Start a new learning session for the authenticated user at the given GEPT level. Selects due words first and backfills with new words, or uses a curated word list when wordIds is provided. Requires authentication.
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body CreateSessionRequest true "Session parameters"
// @Success 201 {object} models.SessionWithWords "Created session with its word list"
// @Failure 400 {object} map[string]string "Bad request - invalid request body, unknown GEPT level, or unknown word IDs"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required, invalid/expired token, or user ID not found in context"
// @Failure 404 {object} map[string]string "Not found - user does not exist"
// @Failure 500 {object} map[string]string "Internal server error - failed to create session"
// @Router /api/v1/srs/sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	// Extract userID from auth middleware context
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		// Fallback to context value for testing
		if ctxUserID, ok := r.Context().Value("userID").(int); ok {
			userID = ctxUserID
		} else {
			h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
			return
		}
	}

	// Parse request body
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	level, err := models.ParseGEPTLevel(req.GeptLevel)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.CreateSession(r.Context(), userID, level, req.WordIDs, req.WordCount)
	if err != nil {
		h.Logger.Error("failed to create session", zap.Error(err))
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			h.RespondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, services.ErrInvalidWordIDs):
			h.RespondError(w, http.StatusBadRequest, "one or more word IDs do not exist")
		case errors.Is(err, services.ErrValidation):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.RespondError(w, http.StatusInternalServerError, "failed to create session")
		}
		return
	}

	h.RespondJSON(w, http.StatusCreated, session)
}

// FinishSession handles PATCH /api/v1/srs/sessions/{id}
// @Summary Finish a learning session
// @Description Record the final answer totals and duration of a session. A finished session becomes read-only; repeating the call is a no-op. Requires authentication.
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Session ID"
// @Param result body FinishSessionRequest true "Final session totals"
// @Success 200 {object} map[string]bool "Session finalized"
// @Failure 400 {object} map[string]string "Bad request - invalid session ID or inconsistent totals"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required, invalid/expired token, or user ID not found in context"
// @Failure 404 {object} map[string]string "Not found - session does not exist or belongs to another user"
// @Failure 500 {object} map[string]string "Internal server error - failed to finish session"
// @Router /api/v1/srs/sessions/{id} [patch]
func (h *SessionHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	// Extract userID from auth middleware context
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		// Fallback to context value for testing
		if ctxUserID, ok := r.Context().Value("userID").(int); ok {
			userID = ctxUserID
		} else {
			h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
			return
		}
	}

	sessionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	// Parse request body
	var req FinishSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := models.SessionResult{
		CorrectAnswers:  req.CorrectAnswers,
		TotalAnswers:    req.TotalAnswers,
		DurationSeconds: req.Duration,
	}
	if err := h.service.FinishSession(r.Context(), userID, sessionID, result); err != nil {
		h.Logger.Error("failed to finish session", zap.Error(err))
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			h.RespondError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, services.ErrValidation):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.RespondError(w, http.StatusInternalServerError, "failed to finish session")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
