package store

import (
	"errors"
	"testing"
	"time"

	"budokan-backend-go/internal/models"
)

func TestUpcomingEvents(t *testing.T) {
	content := NewContentStore(ContentSeed{
		Events: []models.Event{
			{ID: "e1", Title: "Seminar", StartsAt: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "e2", Title: "Grading", StartsAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "e3", Title: "Past open day", StartsAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	})

	events := content.UpcomingEvents(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(events) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(events))
	}
	if events[0].ID != "e2" || events[1].ID != "e1" {
		t.Fatalf("events not sorted soonest first: %s, %s", events[0].ID, events[1].ID)
	}
}

func TestContentLookups(t *testing.T) {
	content := NewContentStore(SeedContent())

	tech, err := content.TechniqueByID("tech-kote-gaeshi")
	if err != nil {
		t.Fatalf("technique by id: %v", err)
	}
	if tech.MinTier != models.TierFree {
		t.Fatalf("expected free technique, got %q", tech.MinTier)
	}

	if _, err := content.TechniqueByID("missing"); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
	if _, err := content.CourseByID("missing"); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}
