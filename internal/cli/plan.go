package cli

import (
	"fmt"
	"strings"

	"github.com/Lanqingsong/DailyFlow/internal/journal"
	"github.com/Lanqingsong/DailyFlow/internal/validation"
)

type PlanAddCmd struct {
	SubCategory string `arg:"" help:"Subcategory id or name."`
	Date        string `short:"D" help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
	Target      int    `short:"t" help:"Target duration in minutes (0 = just log anything)."`
}

func (c *PlanAddCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	date, err := parseDay(c.Date)
	if err != nil {
		return err
	}
	sub, err := resolveSubCategory(ctx.Session.Current(), c.SubCategory)
	if err != nil {
		return err
	}

	plan, err := ctx.Session.AddPlan(journal.PlanInput{
		Date:                  date,
		SubCategoryID:         sub.ID,
		CategoryID:            sub.CategoryID,
		TargetDurationMinutes: c.Target,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Planned %s for %s (ID: %s)\n", sub.Name, date, plan.ID)
	return nil
}

type PlanCancelCmd struct {
	ID string `arg:"" help:"Plan id."`
}

func (c *PlanCancelCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}
	if err := ctx.Session.CancelPlan(c.ID); err != nil {
		return err
	}
	fmt.Printf("Cancelled plan %s\n", c.ID)
	return nil
}

type RecurringAddCmd struct {
	SubCategory string `arg:"" help:"Subcategory id or name."`
	Weekdays    string `short:"w" required:"" help:"Comma-separated weekdays (e.g. mon,wed,fri or 1,3,5)."`
	Target      int    `short:"t" required:"" help:"Target duration in minutes."`
}

func (c *RecurringAddCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	weekdays, err := validation.ParseWeekdays(c.Weekdays)
	if err != nil {
		return err
	}
	sub, err := resolveSubCategory(ctx.Session.Current(), c.SubCategory)
	if err != nil {
		return err
	}

	plan, err := ctx.Session.AddRecurringPlan(journal.RecurringPlanInput{
		SubCategoryID:         sub.ID,
		CategoryID:            sub.CategoryID,
		DaysOfWeek:            weekdays,
		TargetDurationMinutes: c.Target,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Recurring plan for %s on %s, from %s (ID: %s)\n",
		sub.Name, strings.TrimSpace(c.Weekdays), plan.StartDate, plan.ID)
	return nil
}

type RecurringDeleteCmd struct {
	ID string `arg:"" help:"Recurring plan id."`
}

func (c *RecurringDeleteCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}
	if err := ctx.Session.DeleteRecurringPlan(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted recurring plan %s\n", c.ID)
	return nil
}
