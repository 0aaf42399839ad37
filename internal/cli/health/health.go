package health

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

type LogCmd struct {
	User     string  `help:"Username to act as." short:"u"`
	Date     string  `help:"Date to log (YYYY-MM-DD, default today)."`
	Water    int     `help:"Water drunk in ml." default:"0"`
	Exercise float64 `help:"Exercise distance in km." default:"0"`
	Sleep    float64 `help:"Sleep duration in hours." default:"0"`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	log := models.HealthLog{
		UserID:     session.UserID,
		Date:       date,
		WaterML:    c.Water,
		ExerciseKM: c.Exercise,
		SleepHours: c.Sleep,
	}

	if err := ctx.Store.UpsertHealthLog(log); err != nil {
		return err
	}

	fmt.Printf("Health log saved for %s.\n", date)
	return nil
}

type ShowCmd struct {
	User string `help:"Username to act as." short:"u"`
	Date string `help:"Date to show (YYYY-MM-DD, default today)."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	log, err := ctx.Store.GetHealthLog(session.UserID, date)
	if err != nil {
		return err
	}

	fmt.Printf("Health log for %s:\n", date)
	fmt.Printf("  Water:    %d ml\n", log.WaterML)
	fmt.Printf("  Exercise: %.1f km\n", log.ExerciseKM)
	fmt.Printf("  Sleep:    %.1f h\n", log.SleepHours)

	return nil
}
