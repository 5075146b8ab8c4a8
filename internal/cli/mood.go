package cli

import (
	"fmt"

	"github.com/Lanqingsong/DailyFlow/internal/validation"
)

type MoodCmd struct {
	Mood string `arg:"" help:"Mood (happy|excited|neutral|stressed|sad)."`
	Date string `short:"D" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *MoodCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	mood, err := validation.ParseMood(c.Mood)
	if err != nil {
		return err
	}
	date, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Session.SetMood(date, mood); err != nil {
		return err
	}
	fmt.Printf("Mood for %s: %s\n", date, mood)
	return nil
}
