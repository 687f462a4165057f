package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/educreate/srs-service/internal/models"
	"github.com/educreate/srs-service/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VocabularyService defines methods for vocabulary content management
type VocabularyService interface {
	// ImportWords upserts a batch of vocabulary items at the given GEPT level.
	//
	// "level" parameter is used to identify the GEPT level of the whole batch.
	// "words" parameter carries the vocabulary items to insert or update.
	// Returns the number of imported words and the level's total after the import.
	// If the batch is empty or an item misses a required field, services.ErrValidation will be returned.
	ImportWords(ctx context.Context, level models.GEPTLevel, words []models.VocabularyItem) (int, int, error)
}

// VocabularyHandler handles internal vocabulary content endpoints
type VocabularyHandler struct {
	BaseHandler
	service VocabularyService
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(service VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// ImportWordRequest represents one vocabulary item in an import batch
type ImportWordRequest struct {
	English      string `json:"english"`
	Chinese      string `json:"chinese"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Frequency    int    `json:"frequency,omitempty"`
	Difficulty   int    `json:"difficulty,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// ImportWordsRequest represents a vocabulary import request
type ImportWordsRequest struct {
	GeptLevel string              `json:"geptLevel"`
	Words     []ImportWordRequest `json:"words"`
}

// ImportWordsResponse represents the result of a vocabulary import
type ImportWordsResponse struct {
	Imported   int `json:"imported"`
	TotalWords int `json:"totalWords"`
}

// RegisterRoutes registers all vocabulary handler routes
func (h *VocabularyHandler) RegisterRoutes(r chi.Router, apiKeyMiddleware func(http.Handler) http.Handler) {
	r.Route("/internal/words", func(r chi.Router) {
		// Service-to-service routes, guarded by the shared API key
		r.Use(apiKeyMiddleware)
		r.Post("/", h.ImportWords)
	})
}

// ImportWords handles POST /api/v1/srs/internal/words
// @Summary Import vocabulary words
// @Description Insert or update a batch of vocabulary words at the given GEPT level. Existing words with the same english form and level are updated in place. Intended for the content pipeline; requires the service API key.
// @Tags vocabulary
// @Accept json
// @Produce json
// @Security ServiceKeyAuth
// @Param batch body ImportWordsRequest true "Words to import"
// @Success 200 {object} ImportWordsResponse "Import summary"
// @Failure 400 {object} map[string]string "Bad request - invalid request body, unknown GEPT level, or invalid word entries"
// @Failure 401 {object} map[string]string "Unauthorized - invalid or missing API key"
// @Failure 500 {object} map[string]string "Internal server error - failed to import words"
// @Router /api/v1/srs/internal/words [post]
func (h *VocabularyHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var req ImportWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	level, err := models.ParseGEPTLevel(req.GeptLevel)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	words := make([]models.VocabularyItem, 0, len(req.Words))
	for _, word := range req.Words {
		words = append(words, models.VocabularyItem{
			English:      word.English,
			Chinese:      word.Chinese,
			PartOfSpeech: word.PartOfSpeech,
			Frequency:    word.Frequency,
			Difficulty:   word.Difficulty,
			ImageURL:     word.ImageURL,
		})
	}

	imported, total, err := h.service.ImportWords(r.Context(), level, words)
	if err != nil {
		h.Logger.Error("failed to import words", zap.Error(err))
		switch {
		case errors.Is(err, services.ErrValidation):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.RespondError(w, http.StatusInternalServerError, "failed to import words")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, ImportWordsResponse{
		Imported:   imported,
		TotalWords: total,
	})
}
