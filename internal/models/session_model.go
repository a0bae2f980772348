package models

import "time"

// SessionStatus is the lifecycle state of a help-session request.
// pending -> approved | rejected; both outcomes are terminal.
type SessionStatus string

const (
	SessionPending  SessionStatus = "pending"
	SessionApproved SessionStatus = "approved"
	SessionRejected SessionStatus = "rejected"
)

// SessionType says what kind of catalog item the student needs help with.
type SessionType string

const (
	SessionTechnique SessionType = "technique"
	SessionTraining  SessionType = "training"
)

// TrainingSession is a student's request for a one-on-one help session.
// Teacher fields are bound when a teacher approves the request.
type TrainingSession struct {
	ID            string        `json:"id"`
	StudentID     string        `json:"studentId"`
	TeacherID     string        `json:"teacherId,omitempty"`
	Type          SessionType   `json:"type"`
	ItemID        string        `json:"itemId"`
	Message       string        `json:"message,omitempty"`
	PreferredDate time.Time     `json:"preferredDate"`
	PreferredTime string        `json:"preferredTime,omitempty"`
	Status        SessionStatus `json:"status"`
	TeacherNote   string        `json:"teacherNote,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	DecidedAt     *time.Time    `json:"decidedAt,omitempty"`
}
