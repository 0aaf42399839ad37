package models

// HealthLog records one day's health figures for a user. There is at most
// one log per (user, date); saving again for the same date overwrites it.
type HealthLog struct {
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	WaterML    int     `json:"water_ml"`
	ExerciseKM float64 `json:"exercise_km"`
	SleepHours float64 `json:"sleep_hours"`
}
