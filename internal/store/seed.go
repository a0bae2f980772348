package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"budokan-backend-go/internal/models"
)

// Fixed ids so seeded entities can reference each other.
const (
	SeedTeacherID = "t-0001"
	SeedStudentID = "s-0001"
)

// SeedUsers returns the demo user directory. Passwords: the teacher account
// is "teachme", the student accounts are "trainhard".
func SeedUsers() []models.User {
	created := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	return []models.User{
		{
			ID:                  SeedTeacherID,
			Username:            "sensei_akira",
			Email:               "akira@budokan.example",
			PasswordHash:        mustHash("teachme"),
			Type:                models.UserTypeTeacher,
			Level:               models.LevelMaster,
			TotalHours:          420,
			Streak:              96,
			CompletedTechniques: []string{},
			CompletedTraining:   []string{},
			CreatedAt:           created,
			UpdatedAt:           created,
		},
		{
			ID:                  SeedStudentID,
			Username:            "mika",
			Email:               "mika@budokan.example",
			PasswordHash:        mustHash("trainhard"),
			Type:                models.UserTypeStudent,
			Level:               models.LevelIntermediate,
			TotalHours:          34,
			Streak:              12,
			CompletedTechniques: []string{"tech-kote-gaeshi", "tech-irimi-nage"},
			CompletedTraining:   []string{"course-foundations"},
			CreatedAt:           created,
			UpdatedAt:           created,
		},
		{
			ID:                  "s-0002",
			Username:            "daniel",
			Email:               "daniel@budokan.example",
			PasswordHash:        mustHash("trainhard"),
			Type:                models.UserTypeStudent,
			Level:               models.LevelNovice,
			TotalHours:          3,
			Streak:              2,
			CompletedTechniques: []string{},
			CompletedTraining:   []string{},
			CreatedAt:           created,
			UpdatedAt:           created,
		},
	}
}

// SeedProducts returns the demo marketplace catalog, owned by the seed
// teacher.
func SeedProducts() []models.Product {
	created := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	items := []struct {
		id      string
		name    string
		price   string
		kind    models.ProductType
		digital bool
	}{
		{"prod-bokken", "White Oak Bokken", "54.00", models.ProductWeapon, false},
		{"prod-jo", "Hardwood Jo Staff", "39.50", models.ProductWeapon, false},
		{"prod-gi", "Heavyweight Training Gi", "89.00", models.ProductEquipment, false},
		{"prod-sumi-e", "Crane at Dawn (sumi-e print)", "120.00", models.ProductPainting, false},
		{"prod-stretch-band", "Resistance Stretch Band", "18.75", models.ProductTool, false},
		{"prod-kata-video", "Kata Breakdown Video Pack", "24.99", models.ProductTool, true},
	}

	out := make([]models.Product, 0, len(items))
	for _, it := range items {
		out = append(out, models.Product{
			ID:        it.id,
			Name:      it.name,
			Price:     decimal.RequireFromString(it.price),
			Type:      it.kind,
			TeacherID: SeedTeacherID,
			InStock:   true,
			Digital:   it.digital,
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return out
}

// SeedPlans returns the static membership plan catalog.
func SeedPlans() []models.MembershipPlan {
	return []models.MembershipPlan{
		{
			ID:            "plan-basic-monthly",
			Tier:          models.TierBasic,
			Name:          "Basic",
			Price:         decimal.RequireFromString("9.99"),
			BillingPeriod: models.BillingMonthly,
			Features:      []string{"technique library", "community events"},
		},
		{
			ID:            "plan-premium-monthly",
			Tier:          models.TierPremium,
			Name:          "Premium",
			Price:         decimal.RequireFromString("24.99"),
			BillingPeriod: models.BillingMonthly,
			Features:      []string{"technique library", "training courses", "session requests"},
		},
		{
			ID:            "plan-premium-yearly",
			Tier:          models.TierPremium,
			Name:          "Premium (yearly)",
			Price:         decimal.RequireFromString("249.00"),
			BillingPeriod: models.BillingYearly,
			Features:      []string{"technique library", "training courses", "session requests"},
		},
		{
			ID:            "plan-elite-yearly",
			Tier:          models.TierElite,
			Name:          "Elite",
			Price:         decimal.RequireFromString("499.00"),
			BillingPeriod: models.BillingYearly,
			Features:      []string{"everything in premium", "one-on-one coaching", "grading priority"},
		},
	}
}

// SeedContent returns the technique library, course catalog and
// marketing-site content.
func SeedContent() ContentSeed {
	created := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)
	return ContentSeed{
		Techniques: []models.Technique{
			{ID: "tech-kote-gaeshi", Name: "Kote Gaeshi", Category: "wrist locks", Description: "Outward wrist turn throwing technique.", MinTier: models.TierFree, CreatedAt: created},
			{ID: "tech-irimi-nage", Name: "Irimi Nage", Category: "throws", Description: "Entering throw taking the partner's balance to the rear.", MinTier: models.TierBasic, CreatedAt: created},
			{ID: "tech-shiho-nage", Name: "Shiho Nage", Category: "throws", Description: "Four-direction throw from a blended entry.", MinTier: models.TierBasic, CreatedAt: created},
			{ID: "tech-koshi-nage", Name: "Koshi Nage", Category: "hip throws", Description: "Hip throw requiring precise timing and posture.", MinTier: models.TierPremium, CreatedAt: created},
		},
		Courses: []models.TrainingCourse{
			{ID: "course-foundations", Title: "Foundations", Description: "Stance, footwork and ukemi for beginners.", Level: models.LevelNovice, MinTier: models.TierFree, DurationHours: 8, CreatedAt: created},
			{ID: "course-weapons-intro", Title: "Introduction to Weapons", Description: "Bokken and jo fundamentals.", Level: models.LevelIntermediate, MinTier: models.TierPremium, DurationHours: 12, CreatedAt: created},
			{ID: "course-advanced-randori", Title: "Advanced Randori", Description: "Multiple-attacker freestyle practice.", Level: models.LevelAdvanced, MinTier: models.TierElite, DurationHours: 16, CreatedAt: created},
		},
		Events: []models.Event{
			{ID: "event-winter-seminar", Title: "Winter Seminar", Description: "Weekend intensive with guest instructors.", Location: "Main dojo", StartsAt: time.Date(2026, 12, 12, 9, 0, 0, 0, time.UTC)},
			{ID: "event-grading", Title: "Autumn Grading", Description: "Kyu and dan gradings.", Location: "Main dojo", StartsAt: time.Date(2026, 10, 3, 10, 0, 0, 0, time.UTC)},
		},
		Testimonials: []models.Testimonial{
			{ID: uuid.NewString(), Author: "Laura P.", Quote: "The structured courses took my practice from hobby to habit.", Rating: 5},
			{ID: uuid.NewString(), Author: "Tomás R.", Quote: "Booking a help session with a teacher is effortless.", Rating: 4},
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
