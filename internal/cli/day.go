package cli

import (
	"fmt"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	date, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	doc := ctx.Session.Current()
	fmt.Printf("Day %s:\n\n", date)

	for _, m := range doc.Moods {
		if m.Date == date {
			fmt.Printf("Mood: %s\n\n", m.Mood)
		}
	}

	items, err := ctx.Session.PlansForDate(date)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No plans")
	} else {
		fmt.Println("Plans:")
		for _, it := range items {
			kind := "one-off"
			if it.IsRecurring {
				kind = "recurring"
			}
			status := "[pending]"
			if it.IsCompleted {
				status = "[done]"
			}
			fmt.Printf("  %-24s %-9s %3d/%3d min  %s\n",
				subCategoryLabel(doc, it.SubCategoryID()), kind,
				it.CurrentMinutes, it.TargetMinutes(), status)
		}
	}

	printed := false
	for _, r := range doc.Records {
		if r.Date != date {
			continue
		}
		if !printed {
			fmt.Println("\nLogged:")
			printed = true
		}
		detail := fmt.Sprintf("%d min", r.DurationMinutes)
		if r.MetricUnit != "" {
			detail = fmt.Sprintf("%g %s", r.MetricValue, r.MetricUnit)
		}
		line := fmt.Sprintf("  %-24s %-10s", subCategoryLabel(doc, r.SubCategoryID), detail)
		if r.Note != "" {
			line += "  " + r.Note
		}
		if len(r.Media) > 0 {
			line += fmt.Sprintf("  (%d attachment(s))", len(r.Media))
		}
		fmt.Println(line)
	}

	return nil
}
