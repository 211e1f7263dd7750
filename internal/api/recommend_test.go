package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/raifproject/phonefinder/internal/catalog"
	"github.com/raifproject/phonefinder/internal/engine"
	"github.com/raifproject/phonefinder/internal/events"
)

// MockEvents implements events.Client for testing
type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockEvents) Close() {}

func recommendHandler(t *testing.T, ev events.Client) *RecommendHandler {
	t.Helper()
	store, err := catalog.New([]catalog.RawRecord{
		{Brand: "Acme", Model: "One", Category: "Budget", BrandRating: "4.0", ProcessorRating: "4.0", BatteryRating: "4.0", CameraRating: "4.0"},
	})
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	eng := engine.New(store, engine.DefaultConfig(), discardLogger())
	return NewRecommendHandler(eng, ev, discardLogger())
}

func TestRecommendPublishesServedEvent(t *testing.T) {
	ev := new(MockEvents)
	ev.On("Publish", events.SubjectRecommendServed, mock.Anything).Return(nil)

	h := recommendHandler(t, ev)

	req := httptest.NewRequest("POST", "/api/recommend",
		bytes.NewReader([]byte(`{"budget":"Budget","priorities":[{"feature":"brand","rank":1}]}`)))
	w := httptest.NewRecorder()
	h.Recommend(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	ev.AssertCalled(t, "Publish", events.SubjectRecommendServed, mock.MatchedBy(func(data interface{}) bool {
		e, ok := data.(events.RecommendationServedEvent)
		return ok && e.Budget == "Budget" && e.Count == 1 && !e.Fallback
	}))
}

func TestRecommendWorksWithoutEventsClient(t *testing.T) {
	h := recommendHandler(t, nil)

	req := httptest.NewRequest("POST", "/api/recommend",
		bytes.NewReader([]byte(`{"budget":"Budget","priorities":[]}`)))
	w := httptest.NewRecorder()
	h.Recommend(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result engine.Result
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "One", result.Results[0].Model)
}

func TestRecommendValidationBeforeEngine(t *testing.T) {
	ev := new(MockEvents)
	h := recommendHandler(t, ev)

	req := httptest.NewRequest("POST", "/api/recommend",
		bytes.NewReader([]byte(`{"priorities":[{"feature":"brand","rank":1}]}`)))
	w := httptest.NewRecorder()
	h.Recommend(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ev.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
