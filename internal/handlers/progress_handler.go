package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/educreate/srs-service/internal/auth/middleware"
	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService defines methods for answer grading business logic
type ProgressService interface {
	// RecordAnswer grades a single answer and updates the word's progress.
	//
	// "userID" parameter is used to identify the user.
	// "sessionID" parameter is used to identify the session the answer belongs to.
	// "wordID" parameter is used to identify the word.
	// "isCorrect" parameter is used to mark whether the answer was correct.
	// "responseTimeMs" parameter is the answer latency in milliseconds.
	// Repeating the same answer for a session and word is a no-op and returns the current progress.
	// If the session does not exist or belongs to another user, services.ErrSessionNotFound will be returned.
	// If the session is already finished, services.ErrSessionFinished will be returned.
	RecordAnswer(ctx context.Context, userID, sessionID, wordID int, isCorrect bool, responseTimeMs int) (*models.UserWordProgress, error)
}

// ProgressHandler handles answer grading endpoints
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// UpdateProgressRequest represents a single answer submission
type UpdateProgressRequest struct {
	UserID       int  `json:"userId"`
	WordID       int  `json:"wordId"`
	SessionID    int  `json:"sessionId"`
	IsCorrect    bool `json:"isCorrect"`
	ResponseTime int  `json:"responseTime"`
}

// UpdateProgressResponse wraps the updated progress row
type UpdateProgressResponse struct {
	Progress *models.UserWordProgress `json:"progress"`
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/update-progress", func(r chi.Router) {
		// Apply auth middleware to all progress routes
		r.Use(authMiddleware)
		r.Post("/", h.UpdateProgress)
	})
}

// UpdateProgress handles POST /api/v1/srs/update-progress
// @Summary Submit an answer
// @Description Grade a single answer, update the word's memory strength and review schedule, and log the review. The userId in the body must match the authenticated user. Requires authentication.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param answer body UpdateProgressRequest true "Answer details"
// @Success 200 {object} UpdateProgressResponse "Updated progress for the word"
// @Failure 400 {object} map[string]string "Bad request - invalid request body, mismatched userId, negative response time, or finished session"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required, invalid/expired token, or user ID not found in context"
// @Failure 404 {object} map[string]string "Not found - session does not exist or belongs to another user"
// @Failure 500 {object} map[string]string "Internal server error - failed to update progress"
// @Router /api/v1/srs/update-progress [post]
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The token is authoritative for identity; the body must agree with it
	if req.UserID != userID {
		h.RespondError(w, http.StatusBadRequest, "userId does not match the authenticated user")
		return
	}

	progress, err := h.service.RecordAnswer(r.Context(), userID, req.SessionID, req.WordID, req.IsCorrect, req.ResponseTime)
	if err != nil {
		h.Logger.Error("failed to update progress", zap.Error(err))
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			h.RespondError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, services.ErrSessionFinished):
			h.RespondError(w, http.StatusBadRequest, "session is already finished")
		case errors.Is(err, services.ErrValidation):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.RespondError(w, http.StatusInternalServerError, "failed to update progress")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, UpdateProgressResponse{Progress: progress})
}
