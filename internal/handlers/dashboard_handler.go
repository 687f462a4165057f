package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/educreate/srs-service/internal/auth/middleware"
	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardService defines methods for read-side statistics
type DashboardService interface {
	// GetDashboard aggregates study statistics for a user at a GEPT level.
	//
	// "userID" parameter is used to identify the user.
	// "level" parameter is used to identify the GEPT level.
	// If the user does not exist, services.ErrUserNotFound will be returned.
	GetDashboard(ctx context.Context, userID int, level models.GEPTLevel) (*models.DashboardData, error)
	// GetForgettingCurve classifies a user's words into retention buckets
	// and builds chart-ready projections.
	//
	// "userID" parameter is used to identify the user.
	// "level" parameter is used to identify the GEPT level.
	// If the user does not exist, services.ErrUserNotFound will be returned.
	GetForgettingCurve(ctx context.Context, userID int, level models.GEPTLevel) (*models.ForgettingCurveData, error)
}

// DashboardHandler handles read-side statistics endpoints
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all dashboard handler routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		// Apply auth middleware to all dashboard routes
		r.Use(authMiddleware)
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/forgetting-curve", h.GetForgettingCurve)
	})
}

// GetDashboard handles GET /api/v1/srs/dashboard
// @Summary Get study dashboard
// @Description Get aggregate study statistics for the authenticated user at a GEPT level: word status counts, overall accuracy, daily study time and accuracy for the last 14 days, a memory strength histogram, and recently reviewed words. Requires authentication.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geptLevel query string true "GEPT level: ELEMENTARY, INTERMEDIATE, or HIGH_INTERMEDIATE"
// @Success 200 {object} models.DashboardData "Dashboard statistics"
// @Failure 400 {object} map[string]string "Bad request - unknown GEPT level"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required, invalid/expired token, or user ID not found in context"
// @Failure 404 {object} map[string]string "Not found - user does not exist"
// @Failure 500 {object} map[string]string "Internal server error - failed to build dashboard"
// @Router /api/v1/srs/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
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

	level, err := models.ParseGEPTLevel(r.URL.Query().Get("geptLevel"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.GetDashboard(r.Context(), userID, level)
	if err != nil {
		h.Logger.Error("failed to get dashboard", zap.Error(err))
		if errors.Is(err, services.ErrUserNotFound) {
			h.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.RespondError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	h.RespondJSON(w, http.StatusOK, data)
}

// GetForgettingCurve handles GET /api/v1/srs/forgetting-curve
// @Summary Get forgetting curve data
// @Description Get the authenticated user's words classified into mastered, learning, forgetting, and new buckets, plus chart-ready retention projections. Requires authentication.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geptLevel query string true "GEPT level: ELEMENTARY, INTERMEDIATE, or HIGH_INTERMEDIATE"
// @Success 200 {object} models.ForgettingCurveData "Per-word classification and chart data"
// @Failure 400 {object} map[string]string "Bad request - unknown GEPT level"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required, invalid/expired token, or user ID not found in context"
// @Failure 404 {object} map[string]string "Not found - user does not exist"
// @Failure 500 {object} map[string]string "Internal server error - failed to build forgetting curve"
// @Router /api/v1/srs/forgetting-curve [get]
func (h *DashboardHandler) GetForgettingCurve(w http.ResponseWriter, r *http.Request) {
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

	level, err := models.ParseGEPTLevel(r.URL.Query().Get("geptLevel"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.GetForgettingCurve(r.Context(), userID, level)
	if err != nil {
		h.Logger.Error("failed to get forgetting curve", zap.Error(err))
		if errors.Is(err, services.ErrUserNotFound) {
			h.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.RespondError(w, http.StatusInternalServerError, "failed to build forgetting curve")
		return
	}

	h.RespondJSON(w, http.StatusOK, data)
}
