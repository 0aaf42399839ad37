package sqlite

import (
	"database/sql"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/validation"
)

// UpsertHealthLog saves the day's figures, replacing any existing row for
// the same (user, date). Saving twice with the same values is a no-op for
// the stored state.
func (s *Store) UpsertHealthLog(log models.HealthLog) error {
	if err := validation.ValidateDate(log.Date); err != nil {
		return err
	}
	if err := validation.ValidateHealthFigures(log.WaterML, log.ExerciseKM, log.SleepHours); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO health_logs (user_id, log_date, water_ml, exercise_km, sleep_hours) VALUES (?, ?, ?, ?, ?)",
		log.UserID, log.Date, log.WaterML, log.ExerciseKM, log.SleepHours,
	)
	return err
}

// GetHealthLog returns the log for (user, date). A date with no saved data
// reads as zeros rather than an error.
func (s *Store) GetHealthLog(userID, date string) (models.HealthLog, error) {
	row := s.db.QueryRow(
		"SELECT water_ml, exercise_km, sleep_hours FROM health_logs WHERE user_id = ? AND log_date = ?",
		userID, date,
	)

	log := models.HealthLog{UserID: userID, Date: date}
	err := row.Scan(&log.WaterML, &log.ExerciseKM, &log.SleepHours)
	if err != nil {
		if err == sql.ErrNoRows {
			return log, nil
		}
		return models.HealthLog{}, err
	}

	return log, nil
}
