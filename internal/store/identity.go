package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"budokan-backend-go/internal/models"
	"budokan-backend-go/internal/persistence"
)

// CurrentUserKey is the fixed snapshot key the current user is mirrored
// under, the port of the browser local-storage key.
const CurrentUserKey = "budokan:current_user"

// ErrUserNotFound is returned when a user id does not exist in the
// directory.
var ErrUserNotFound = errors.New("user not found")

// IdentityStore owns the user directory and the current authenticated user.
// Login and Register keep the boolean failure contract of the original
// client: a false return carries no further detail.
type IdentityStore struct {
	mu        sync.RWMutex
	users     []models.User
	current   *models.User
	snapshots persistence.Store
	now       func() time.Time
}

// NewIdentityStore creates the store with a seeded user directory.
func NewIdentityStore(snapshots persistence.Store, seed []models.User) *IdentityStore {
	users := make([]models.User, len(seed))
	for i := range seed {
		users[i] = seed[i].Clone()
	}
	return &IdentityStore{
		users:     users,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// Restore loads the mirrored current user written by a previous run. A
// missing or corrupt snapshot is discarded and treated as "no stored user".
func (s *IdentityStore) Restore(ctx context.Context) {
	raw, err := s.snapshots.Get(ctx, CurrentUserKey)
	if err != nil {
		return
	}
	var snapshot models.User
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		_ = s.snapshots.Delete(ctx, CurrentUserKey)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Only restore users that still exist in the directory.
	for i := range s.users {
		if s.users[i].ID == snapshot.ID {
			user := s.users[i].Clone()
			s.current = &user
			return
		}
	}
	_ = s.snapshots.Delete(ctx, CurrentUserKey)
}

// Login authenticates by username and password. On a mismatch the current
// user is left unchanged and ok is false.
func (s *IdentityStore) Login(ctx context.Context, username, password string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(s.users[i].PasswordHash), []byte(password)) != nil {
			return models.User{}, false
		}
		user := s.users[i].Clone()
		s.current = &user
		s.mirrorLocked(ctx)
		return s.users[i].Clone(), true
	}
	return models.User{}, false
}

// Register creates an account. Registering a taken username returns false
// and leaves the directory untouched.
func (s *IdentityStore) Register(ctx context.Context, username, email, password string, userType models.UserType) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			return models.User{}, false
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, false
	}

	now := s.now().UTC()
	user := models.User{
		ID:                  uuid.NewString(),
		Username:            username,
		Email:               email,
		PasswordHash:        string(hash),
		Type:                userType,
		Level:               models.LevelNovice,
		CompletedTechniques: []string{},
		CompletedTraining:   []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.users = append(s.users, user)

	current := user.Clone()
	s.current = &current
	s.mirrorLocked(ctx)
	return user.Clone(), true
}

// Logout clears the current user and removes the persisted snapshot.
func (s *IdentityStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	_ = s.snapshots.Delete(ctx, CurrentUserKey)
}

// Current returns a copy of the current authenticated user, if any.
func (s *IdentityStore) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return s.current.Clone(), true
}

// UserByID looks up a directory entry.
func (s *IdentityStore) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i].Clone(), nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdateProgress records completion of a technique and/or training course.
// It is idempotent per id: re-adding an already-completed id changes
// nothing. The level is recomputed from the combined completed count and
// never decreases.
func (s *IdentityStore) UpdateProgress(ctx context.Context, userID, techniqueID, trainingID string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findLocked(userID)
	if user == nil {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	changed := false
	if techniqueID != "" && !user.HasCompletedTechnique(techniqueID) {
		user.CompletedTechniques = append(user.CompletedTechniques, techniqueID)
		user.TotalHours++
		changed = true
	}
	if trainingID != "" && !user.HasCompletedTraining(trainingID) {
		user.CompletedTraining = append(user.CompletedTraining, trainingID)
		user.TotalHours++
		changed = true
	}

	if changed {
		user.Streak++
		if next := models.LevelForCount(user.CompletedCount()); next.Rank() > user.Level.Rank() {
			user.Level = next
		}
		user.UpdatedAt = s.now().UTC()
		if s.current != nil && s.current.ID == user.ID {
			current := user.Clone()
			s.current = &current
			s.mirrorLocked(ctx)
		}
	}
	return user.Clone(), nil
}

func (s *IdentityStore) findLocked(id string) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// mirrorLocked writes the current user snapshot. Mirroring is best effort:
// the boolean store contract leaves no channel to surface a write failure.
func (s *IdentityStore) mirrorLocked(ctx context.Context) {
	if s.current == nil {
		return
	}
	raw, err := json.Marshal(s.current)
	if err != nil {
		return
	}
	_ = s.snapshots.Put(ctx, CurrentUserKey, raw)
}
