package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/raifproject/phonefinder/internal/engine"
	"github.com/raifproject/phonefinder/internal/events"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type PriorityPayload struct {
	Feature string `json:"feature" validate:"required"`
	Rank    int    `json:"rank"`
}

type RecommendRequest struct {
	Budget     string            `json:"budget" validate:"required"`
	Priorities []PriorityPayload `json:"priorities" validate:"dive"`
}

type RecommendHandler struct {
	engine *engine.Engine
	events events.Client
	logger *slog.Logger
}

func NewRecommendHandler(e *engine.Engine, ev events.Client, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{engine: e, events: ev, logger: logger}
}

// Recommend handles POST /api/recommend
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	priorities := make([]engine.Priority, 0, len(req.Priorities))
	for _, p := range req.Priorities {
		priorities = append(priorities, engine.Priority{Feature: p.Feature, Rank: p.Rank})
	}

	result, err := h.engine.Recommend(req.Budget, priorities)
	if err != nil {
		var dataErr *engine.DataError
		if errors.As(err, &dataErr) {
			h.logger.Error("recommendation failed on bad catalog data",
				"brand", dataErr.Brand, "model", dataErr.Model, "field", dataErr.Field)
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	recommendationsReturned.Add(float64(result.Count))
	if result.Fallback {
		fallbackActivations.Inc()
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectRecommendServed, events.RecommendationServedEvent{
			EventID:  uuid.New(),
			Budget:   req.Budget,
			Fallback: result.Fallback,
			Count:    result.Count,
			At:       time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
