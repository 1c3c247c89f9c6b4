// Package seed populates the database with demo accounts and two weeks
// of daily records so dashboards have data out of the box.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sleepwise/coach-api/internal/auth"
	"github.com/sleepwise/coach-api/internal/domain"
)

// DemoPassword is the password for all seeded accounts.
const DemoPassword = "sleepwise-demo"

type demoUser struct {
	id    uuid.UUID
	email string
}

// Run creates the demo users (idempotently) and backfills 14 days of
// sleep logs for each.
func Run(db *gorm.DB) error {
	users := []demoUser{
		{id: uuid.MustParse("11111111-1111-1111-1111-111111111111"), email: "ava@sleepwise.dev"},
		{id: uuid.MustParse("22222222-2222-2222-2222-222222222222"), email: "ben@sleepwise.dev"},
		{id: uuid.MustParse("33333333-3333-3333-3333-333333333333"), email: "cleo@sleepwise.dev"},
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, u := range users {
		user := domain.User{ID: u.id, Email: u.email, PasswordHash: hash}
		if err := db.FirstOrCreate(&user, domain.User{ID: u.id}).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.email, err)
		}
		log.Printf("User %s (%s) ready", u.id, u.email)
	}

	genders := []string{"Male", "Female"}
	bmiCategories := []string{"Normal", "Normal Weight", "Overweight", "Obese"}
	risks := []string{"None", "None", "None", "Insomnia", "Sleep Apnea"}

	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	for _, u := range users {
		var existing int64
		if err := db.Model(&domain.SleepLog{}).Where("user_id = ?", u.id).Count(&existing).Error; err != nil {
			return fmt.Errorf("count logs for %s: %w", u.email, err)
		}
		if existing > 0 {
			log.Printf("User %s already has %d logs, skipping", u.email, existing)
			continue
		}

		for i := 13; i >= 0; i-- {
			age := 28 + rng.Intn(25)
			gender := genders[rng.Intn(len(genders))]
			duration := 5.5 + rng.Float64()*3.0
			activity := 30 + rng.Intn(60)
			stress := 3 + rng.Intn(6)
			bmi := bmiCategories[rng.Intn(len(bmiCategories))]
			bp := fmt.Sprintf("%d/%d", 110+rng.Intn(30), 70+rng.Intn(20))
			heartRate := 60 + rng.Intn(25)
			steps := 3000 + rng.Intn(8000)

			quality := 4.0 + rng.Float64()*5.0
			risk := risks[rng.Intn(len(risks))]

			entry := domain.SleepLog{
				UserID:           u.id,
				Age:              &age,
				Gender:           &gender,
				SleepDuration:    &duration,
				PhysicalActivity: &activity,
				StressLevel:      &stress,
				BMICategory:      &bmi,
				BloodPressure:    &bp,
				HeartRate:        &heartRate,
				DailySteps:       &steps,
				PredictedQuality: &quality,
				DisorderRisk:     &risk,
				CreatedAt:        now.AddDate(0, 0, -i),
			}
			entry.SetDriverList([]string{"Stress Level", "Sleep Duration"})

			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("create log for %s: %w", u.email, err)
			}
		}
		log.Printf("Created sleep logs for user %s", u.email)
	}

	log.Println("Seed completed")
	return nil
}
