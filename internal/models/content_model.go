package models

import "time"

// Technique is a library entry students can complete. Access to the full
// entry may be gated by membership tier.
type Technique struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	MinTier     Tier      `json:"minTier"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TrainingCourse is a structured training module.
type TrainingCourse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Level         UserLevel `json:"level"`
	MinTier       Tier      `json:"minTier"`
	DurationHours int       `json:"durationHours"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Event is a marketing-site entry for seminars, gradings and open days.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
}

// Testimonial is a quote shown on the marketing site.
type Testimonial struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}
