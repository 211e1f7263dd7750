package events

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationServedEvent struct {
	EventID  uuid.UUID `json:"event_id"`
	Budget   string    `json:"budget"`
	Fallback bool      `json:"fallback"`
	Count    int       `json:"count"`
	At       time.Time `json:"at"`
}

type CategoriesListedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Categories int       `json:"categories"`
	At         time.Time `json:"at"`
}
