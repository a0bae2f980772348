package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"budokan-backend-go/internal/models"
)

// ErrContentNotFound is returned when a catalog or content id is unknown.
var ErrContentNotFound = errors.New("content not found")

// ContentSeed bundles the read-mostly reference data the front-ends render.
type ContentSeed struct {
	Techniques   []models.Technique
	Courses      []models.TrainingCourse
	Events       []models.Event
	Testimonials []models.Testimonial
}

// ContentStore owns the technique library, training courses and the
// marketing-site content (events, testimonials).
type ContentStore struct {
	mu           sync.RWMutex
	techniques   []models.Technique
	courses      []models.TrainingCourse
	events       []models.Event
	testimonials []models.Testimonial
}

// NewContentStore creates the store from seed fixtures.
func NewContentStore(seed ContentSeed) *ContentStore {
	return &ContentStore{
		techniques:   append([]models.Technique(nil), seed.Techniques...),
		courses:      append([]models.TrainingCourse(nil), seed.Courses...),
		events:       append([]models.Event(nil), seed.Events...),
		testimonials: append([]models.Testimonial(nil), seed.Testimonials...),
	}
}

// Techniques returns a copy of the technique library.
func (s *ContentStore) Techniques() []models.Technique {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Technique(nil), s.techniques...)
}

// TechniqueByID looks up a technique.
func (s *ContentStore) TechniqueByID(id string) (models.Technique, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.techniques {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Technique{}, ErrContentNotFound
}

// Courses returns a copy of the training course catalog.
func (s *ContentStore) Courses() []models.TrainingCourse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TrainingCourse(nil), s.courses...)
}

// CourseByID looks up a training course.
func (s *ContentStore) CourseByID(id string) (models.TrainingCourse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.TrainingCourse{}, ErrContentNotFound
}

// UpcomingEvents returns events starting at or after the given time,
// soonest first.
func (s *ContentStore) UpcomingEvents(after time.Time) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for _, e := range s.events {
		if !e.StartsAt.Before(after) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out
}

// Testimonials returns a copy of the testimonial list.
func (s *ContentStore) Testimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Testimonial(nil), s.testimonials...)
}
