package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SleepLog is a persisted daily record. Rows written by the predict
// endpoint also carry the prediction outcome; rows written by the log
// endpoint carry the raw inputs only.
type SleepLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_logs_user_created" json:"user_id"`
	Age              *int      `gorm:"type:smallint" json:"age,omitempty"`
	Gender           *string   `gorm:"type:varchar(32)" json:"gender,omitempty"`
	SleepDuration    *float64  `json:"sleep_duration,omitempty"`
	PhysicalActivity *int      `json:"physical_activity,omitempty"`
	StressLevel      *int      `gorm:"type:smallint" json:"stress_level,omitempty"`
	BMICategory      *string   `gorm:"type:varchar(32)" json:"bmi_category,omitempty"`
	BloodPressure    *string   `gorm:"type:varchar(16)" json:"blood_pressure,omitempty"`
	HeartRate        *int      `gorm:"type:smallint" json:"heart_rate,omitempty"`
	DailySteps       *int      `json:"daily_steps,omitempty"`
	PredictedQuality *float64  `json:"predicted_quality,omitempty"`
	DisorderRisk     *string   `gorm:"type:varchar(16)" json:"disorder_risk,omitempty"`
	TopDrivers       *string   `gorm:"type:text" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index:idx_sleep_logs_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// DriverList decodes the stored top-drivers JSON. Returns nil when the
// row has no drivers or the stored value is not valid JSON.
func (s *SleepLog) DriverList() []string {
	if s.TopDrivers == nil {
		return nil
	}
	var drivers []string
	if err := json.Unmarshal([]byte(*s.TopDrivers), &drivers); err != nil {
		return nil
	}
	return drivers
}

// SetDriverList stores the top drivers as JSON.
func (s *SleepLog) SetDriverList(drivers []string) {
	if len(drivers) == 0 {
		s.TopDrivers = nil
		return
	}
	data, err := json.Marshal(drivers)
	if err != nil {
		return
	}
	encoded := string(data)
	s.TopDrivers = &encoded
}

// LogRequest is the request body for storing a daily record.
// @Description Request payload for storing a daily health record.
type LogRequest struct {
	HealthRecord
}

// SleepLogResponse is the response body for sleep log endpoints.
// @Description Stored daily record with any attached prediction outcome.
type SleepLogResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Age              *int      `json:"age,omitempty"`
	Gender           *string   `json:"gender,omitempty"`
	SleepDuration    *float64  `json:"sleep_duration,omitempty"`
	PhysicalActivity *int      `json:"physical_activity,omitempty"`
	StressLevel      *int      `json:"stress_level,omitempty"`
	BMICategory      *string   `json:"bmi_category,omitempty"`
	BloodPressure    *string   `json:"blood_pressure,omitempty"`
	HeartRate        *int      `json:"heart_rate,omitempty"`
	DailySteps       *int      `json:"daily_steps,omitempty"`
	PredictedQuality *float64  `json:"predicted_quality,omitempty"`
	DisorderRisk     *string   `json:"disorder_risk,omitempty"`
	TopDrivers       []string  `json:"top_drivers,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (s *SleepLog) ToResponse() SleepLogResponse {
	return SleepLogResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		Age:              s.Age,
		Gender:           s.Gender,
		SleepDuration:    s.SleepDuration,
		PhysicalActivity: s.PhysicalActivity,
		StressLevel:      s.StressLevel,
		BMICategory:      s.BMICategory,
		BloodPressure:    s.BloodPressure,
		HeartRate:        s.HeartRate,
		DailySteps:       s.DailySteps,
		PredictedQuality: s.PredictedQuality,
		DisorderRisk:     s.DisorderRisk,
		TopDrivers:       s.DriverList(),
		CreatedAt:        s.CreatedAt,
	}
}

// SleepLogFilter narrows sleep log listings.
type SleepLogFilter struct {
	From   *time.Time
	To     *time.Time
	Cursor string
	Limit  int
}
