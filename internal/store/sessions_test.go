package store

import (
	"errors"
	"testing"
	"time"

	"budokan-backend-go/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	sessions := NewSessionRequestStore()

	created := sessions.RequestHelp("s1", models.SessionRequest{
		Type:          models.SessionTechnique,
		ItemID:        "tech-kote-gaeshi",
		Message:       "struggling with the entry",
		PreferredDate: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		PreferredTime: "18:00",
	})
	if created.Status != models.SessionPending {
		t.Fatalf("new request must be pending, got %q", created.Status)
	}
	if created.TeacherID != "" {
		t.Fatalf("new request must not have a teacher, got %q", created.TeacherID)
	}

	approved, err := sessions.Approve(created.ID, "t1", "see you on the mat")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != models.SessionApproved {
		t.Fatalf("expected approved, got %q", approved.Status)
	}
	if approved.TeacherID != "t1" {
		t.Fatalf("approve must bind the teacher, got %q", approved.TeacherID)
	}
	if approved.DecidedAt == nil {
		t.Fatal("approve must record the decision time")
	}

	// Terminal states are immutable: rejecting an approved session fails
	// and changes nothing.
	if _, err := sessions.Reject(created.ID, "too late"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	after, err := sessions.SessionByID(created.ID)
	if err != nil {
		t.Fatalf("session by id: %v", err)
	}
	if after.Status != models.SessionApproved {
		t.Fatalf("status must remain approved, got %q", after.Status)
	}
	if after.TeacherID != "t1" {
		t.Fatalf("teacher binding must survive, got %q", after.TeacherID)
	}
}

func TestRejectPendingIsTerminal(t *testing.T) {
	sessions := NewSessionRequestStore()
	created := sessions.RequestHelp("s1", models.SessionRequest{
		Type:          models.SessionTraining,
		ItemID:        "course-foundations",
		PreferredDate: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	})

	rejected, err := sessions.Reject(created.ID, "no availability")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != models.SessionRejected {
		t.Fatalf("expected rejected, got %q", rejected.Status)
	}

	if _, err := sessions.Approve(created.ID, "t1", ""); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed approving a rejected session, got %v", err)
	}
}

func TestSessionQueries(t *testing.T) {
	sessions := NewSessionRequestStore()
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	sessions.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	mk := func(student string, preferred time.Time) models.TrainingSession {
		return sessions.RequestHelp(student, models.SessionRequest{
			Type:          models.SessionTechnique,
			ItemID:        "tech-irimi-nage",
			PreferredDate: preferred,
		})
	}

	first := mk("s1", base.AddDate(0, 0, 20))
	second := mk("s1", base.AddDate(0, 0, 5))
	third := mk("s2", base.AddDate(0, 0, 10))

	// Student queries are newest first.
	mine := sessions.StudentSessions("s1")
	if len(mine) != 2 || mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Fatalf("student sessions not newest first: %+v", ids(mine))
	}

	// The pending queue is global and newest first.
	pending := sessions.PendingSessions()
	if len(pending) != 3 || pending[0].ID != third.ID {
		t.Fatalf("pending sessions not newest first: %+v", ids(pending))
	}

	// Approve two for the same teacher; the queue orders by soonest
	// preferred date regardless of request order.
	if _, err := sessions.Approve(first.ID, "t1", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := sessions.Approve(second.ID, "t1", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := sessions.Approve(third.ID, "t2", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}

	queue := sessions.TeacherQueue("t1")
	if len(queue) != 2 || queue[0].ID != second.ID || queue[1].ID != first.ID {
		t.Fatalf("teacher queue not soonest-preferred-date first: %+v", ids(queue))
	}
	if pending := sessions.PendingSessions(); len(pending) != 0 {
		t.Fatalf("expected empty pending queue, got %d", len(pending))
	}
}

func TestUnknownSession(t *testing.T) {
	sessions := NewSessionRequestStore()
	if _, err := sessions.Approve("missing", "t1", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := sessions.Reject("missing", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func ids(sessions []models.TrainingSession) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}
