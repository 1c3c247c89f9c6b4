package domain

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestAgeBracket(t *testing.T) {
	tests := []struct {
		name string
		age  *int
		want string
	}{
		{"nil age", nil, "Unknown"},
		{"minor", intPtr(12), "0-17"},
		{"bracket lower bound", intPtr(25), "25-34"},
		{"bracket upper bound", intPtr(34), "25-34"},
		{"middle age", intPtr(50), "45-54"},
		{"senior", intPtr(80), "65-200"},
		{"negative age", intPtr(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeBracket(tt.age); got != tt.want {
				t.Errorf("AgeBracket(%v) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}

func TestHealthRecord_CategoricalFields(t *testing.T) {
	var nilRec *HealthRecord
	if got := nilRec.CategoricalFields(); len(got) != 0 {
		t.Errorf("nil record CategoricalFields() = %v, want empty", got)
	}

	rec := &HealthRecord{Gender: strPtr("Male")}
	got := rec.CategoricalFields()
	if got[FieldGender] != "Male" {
		t.Errorf("CategoricalFields()[%q] = %q, want %q", FieldGender, got[FieldGender], "Male")
	}
	if _, ok := got[FieldBMICategory]; ok {
		t.Errorf("absent BMI category should not appear in %v", got)
	}
}
