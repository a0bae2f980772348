package models

import "time"

// UserType distinguishes the two account kinds.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTeacher UserType = "teacher"
)

// UserLevel is the training rank of a student. Levels only move upward.
type UserLevel string

const (
	LevelNovice       UserLevel = "novice"
	LevelIntermediate UserLevel = "intermediate"
	LevelAdvanced     UserLevel = "advanced"
	LevelMaster       UserLevel = "master"
)

// Completed-count thresholds at which a student is promoted.
const (
	ThresholdIntermediate = 10
	ThresholdAdvanced     = 20
	ThresholdMaster       = 35
)

var levelRanks = map[UserLevel]int{
	LevelNovice:       0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
	LevelMaster:       3,
}

// Rank returns the ordinal position of the level. Unknown levels rank lowest.
func (l UserLevel) Rank() int {
	return levelRanks[l]
}

// LevelForCount maps a combined completed-item count to the level it earns.
func LevelForCount(count int) UserLevel {
	switch {
	case count >= ThresholdMaster:
		return LevelMaster
	case count >= ThresholdAdvanced:
		return LevelAdvanced
	case count >= ThresholdIntermediate:
		return LevelIntermediate
	default:
		return LevelNovice
	}
}

// User represents a student or teacher account.
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	Type                UserType  `json:"userType"`
	Level               UserLevel `json:"level"`
	TotalHours          int       `json:"totalHours"`
	Streak              int       `json:"streak"`
	CompletedTechniques []string  `json:"completedTechniques"`
	CompletedTraining   []string  `json:"completedTraining"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CompletedCount is the combined number of completed techniques and courses.
func (u *User) CompletedCount() int {
	return len(u.CompletedTechniques) + len(u.CompletedTraining)
}

// HasCompletedTechnique reports whether the technique id is already recorded.
func (u *User) HasCompletedTechnique(id string) bool {
	return containsID(u.CompletedTechniques, id)
}

// HasCompletedTraining reports whether the course id is already recorded.
func (u *User) HasCompletedTraining(id string) bool {
	return containsID(u.CompletedTraining, id)
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (u *User) Clone() User {
	out := *u
	out.CompletedTechniques = append([]string(nil), u.CompletedTechniques...)
	out.CompletedTraining = append([]string(nil), u.CompletedTraining...)
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
