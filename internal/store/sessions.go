package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"budokan-backend-go/internal/models"
)

var (
	// ErrSessionNotFound is returned when a session id does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionClosed is returned when approving or rejecting a session
	// that already left the pending state. Terminal states are immutable.
	ErrSessionClosed = errors.New("session already decided")
)

// SessionRequestStore owns teacher/student help-session requests and their
// approval workflow. Each session moves pending -> approved or rejected,
// exactly once.
type SessionRequestStore struct {
	mu       sync.RWMutex
	sessions []models.TrainingSession
	now      func() time.Time
}

// NewSessionRequestStore creates an empty store.
func NewSessionRequestStore() *SessionRequestStore {
	return &SessionRequestStore{now: time.Now}
}

// RequestHelp files a new pending session request for a student.
func (s *SessionRequestStore) RequestHelp(studentID string, req models.SessionRequest) models.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.TrainingSession{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		Type:          req.Type,
		ItemID:        req.ItemID,
		Message:       req.Message,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Status:        models.SessionPending,
		CreatedAt:     s.now().UTC(),
	}
	s.sessions = append(s.sessions, session)
	return session
}

// Approve moves a pending session to approved and binds the teacher fields.
func (s *SessionRequestStore) Approve(sessionID, teacherID, note string) (models.TrainingSession, error) {
	return s.decide(sessionID, models.SessionApproved, teacherID, note)
}

// Reject moves a pending session to rejected.
func (s *SessionRequestStore) Reject(sessionID, note string) (models.TrainingSession, error) {
	return s.decide(sessionID, models.SessionRejected, "", note)
}

func (s *SessionRequestStore) decide(sessionID string, status models.SessionStatus, teacherID, note string) (models.TrainingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID != sessionID {
			continue
		}
		if s.sessions[i].Status != models.SessionPending {
			return models.TrainingSession{}, ErrSessionClosed
		}
		decidedAt := s.now().UTC()
		s.sessions[i].Status = status
		s.sessions[i].TeacherNote = note
		s.sessions[i].DecidedAt = &decidedAt
		if teacherID != "" {
			s.sessions[i].TeacherID = teacherID
		}
		return s.sessions[i], nil
	}
	return models.TrainingSession{}, ErrSessionNotFound
}

// SessionByID looks up a session.
func (s *SessionRequestStore) SessionByID(id string) (models.TrainingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.ID == id {
			return session, nil
		}
	}
	return models.TrainingSession{}, ErrSessionNotFound
}

// StudentSessions returns all of a student's requests, newest first.
func (s *SessionRequestStore) StudentSessions(studentID string) []models.TrainingSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TrainingSession
	for _, session := range s.sessions {
		if session.StudentID == studentID {
			out = append(out, session)
		}
	}
	sortNewestFirst(out)
	return out
}

// PendingSessions returns every pending request, newest first.
func (s *SessionRequestStore) PendingSessions() []models.TrainingSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TrainingSession
	for _, session := range s.sessions {
		if session.Status == models.SessionPending {
			out = append(out, session)
		}
	}
	sortNewestFirst(out)
	return out
}

// TeacherQueue returns the teacher's approved sessions ordered by the
// soonest preferred date.
func (s *SessionRequestStore) TeacherQueue(teacherID string) []models.TrainingSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TrainingSession
	for _, session := range s.sessions {
		if session.Status == models.SessionApproved && session.TeacherID == teacherID {
			out = append(out, session)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PreferredDate.Before(out[j].PreferredDate)
	})
	return out
}

func sortNewestFirst(sessions []models.TrainingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
}
