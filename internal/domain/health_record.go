package domain

import "fmt"

// Canonical raw-record field names. These match the column names the
// training job saw, so the feature pipeline can project a record
// directly onto the trained schema.
const (
	FieldAge              = "Age"
	FieldGender           = "Gender"
	FieldSleepDuration    = "Sleep Duration"
	FieldPhysicalActivity = "Physical Activity Level"
	FieldStressLevel      = "Stress Level"
	FieldBMICategory      = "BMI Category"
	FieldBloodPressure    = "Blood Pressure"
	FieldHeartRate        = "Heart Rate"
	FieldDailySteps       = "Daily Steps"
)

// HealthRecord is a partially populated daily health/lifestyle record.
// Every field is optional; the feature pipeline degrades missing or
// malformed values via imputation rather than rejecting them.
// @Description Daily health and lifestyle inputs. All fields optional.
type HealthRecord struct {
	// Age in years
	Age *int `json:"age,omitempty" validate:"omitempty,min=0,max=120" example:"34"`
	// Gender (free-form, e.g. Male/Female)
	Gender *string `json:"gender,omitempty" example:"Male"`
	// Sleep duration in hours
	SleepDuration *float64 `json:"sleep_duration,omitempty" validate:"omitempty,min=0,max=24" example:"5.5"`
	// Physical activity in minutes per day
	PhysicalActivity *int `json:"physical_activity,omitempty" example:"30"`
	// Self-reported stress level (0-10)
	StressLevel *int `json:"stress_level,omitempty" validate:"omitempty,min=0,max=10" example:"8"`
	// Body-mass category (e.g. Normal, Overweight, Obese)
	BMICategory *string `json:"bmi_category,omitempty" example:"Obese"`
	// Blood pressure as a single "systolic/diastolic" string
	BloodPressure *string `json:"blood_pressure,omitempty" example:"150/95"`
	// Resting heart rate in bpm
	HeartRate *int `json:"heart_rate,omitempty" example:"88"`
	// Steps per day
	DailySteps *int `json:"daily_steps,omitempty" example:"2000"`
}

// NumericFields returns the record's numeric fields keyed by canonical
// column name. Absent fields are absent from the map.
func (r *HealthRecord) NumericFields() map[string]float64 {
	out := make(map[string]float64)
	if r == nil {
		return out
	}
	if r.Age != nil {
		out[FieldAge] = float64(*r.Age)
	}
	if r.SleepDuration != nil {
		out[FieldSleepDuration] = *r.SleepDuration
	}
	if r.PhysicalActivity != nil {
		out[FieldPhysicalActivity] = float64(*r.PhysicalActivity)
	}
	if r.StressLevel != nil {
		out[FieldStressLevel] = float64(*r.StressLevel)
	}
	if r.HeartRate != nil {
		out[FieldHeartRate] = float64(*r.HeartRate)
	}
	if r.DailySteps != nil {
		out[FieldDailySteps] = float64(*r.DailySteps)
	}
	return out
}

// CategoricalFields returns the record's categorical fields keyed by
// canonical column name. Absent fields are absent from the map.
func (r *HealthRecord) CategoricalFields() map[string]string {
	out := make(map[string]string)
	if r == nil {
		return out
	}
	if r.Gender != nil {
		out[FieldGender] = *r.Gender
	}
	if r.BMICategory != nil {
		out[FieldBMICategory] = *r.BMICategory
	}
	return out
}

// AgeBracket maps an optional age to a coarse bracket for de-identified
// coach prompts.
func AgeBracket(age *int) string {
	if age == nil {
		return "Unknown"
	}
	brackets := [][2]int{{0, 17}, {18, 24}, {25, 34}, {35, 44}, {45, 54}, {55, 64}, {65, 200}}
	for _, b := range brackets {
		if *age >= b[0] && *age <= b[1] {
			return fmt.Sprintf("%d-%d", b[0], b[1])
		}
	}
	return "Unknown"
}
