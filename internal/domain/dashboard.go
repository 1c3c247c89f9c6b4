package domain

// DashboardSeries holds parallel per-log arrays for charting.
// @Description Time series of logged sleep data for dashboards.
type DashboardSeries struct {
	// Log dates (YYYY-MM-DD)
	Dates []string `json:"dates"`
	// Logged sleep hours per entry (null when not provided)
	SleepHours []*float64 `json:"sleep_hours"`
	// Predicted quality per entry (null when the entry has no prediction)
	Quality []*float64 `json:"quality"`
	// Stress level per entry
	Stress []*int `json:"stress"`
	// Daily steps per entry
	Steps []*int `json:"steps"`
}

// TopDriversSummary aggregates attribution drivers over a window.
// @Description Latest top drivers plus how often each driver appeared.
type TopDriversSummary struct {
	// Drivers from the most recent prediction in the window
	LatestTopDrivers []string `json:"latest_top_drivers"`
	// Number of appearances per driver across the window
	DriverCounts map[string]int `json:"driver_counts"`
}
