package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/raifproject/phonefinder/internal/catalog"
	"github.com/raifproject/phonefinder/internal/events"
)

type CategoriesHandler struct {
	store  *catalog.Store
	events events.Client
}

func NewCategoriesHandler(s *catalog.Store, ev events.Client) *CategoriesHandler {
	return &CategoriesHandler{store: s, events: ev}
}

// List handles GET /api/categories
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories := h.store.DistinctCategories()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectCategoriesListed, events.CategoriesListedEvent{
			EventID:    uuid.New(),
			Categories: len(categories),
			At:         time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}
