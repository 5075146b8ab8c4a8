// Package planner resolves what is planned, completed, and missed for
// a calendar day by merging one-off plans and recurring plans against
// the day's logged records.
package planner

import "github.com/Lanqingsong/DailyFlow/internal/models"

// RecurringDoneMarker is reported in place of a record id when a
// recurring plan is satisfied. Recurring completion is recomputed on
// every query and never persisted, so there is no real record to name.
const RecurringDoneMarker = "recurring-done"

// Item is one resolved plan entry. Exactly one of OneOff and Recurring
// is set; IsRecurring tags which branch it is.
type Item struct {
	OneOff              *models.Plan
	Recurring           *models.RecurringPlan
	IsRecurring         bool
	IsCompleted         bool
	CompletedByRecordID string
	CurrentMinutes      int
}

// SubCategoryID returns the subcategory the item targets, regardless
// of branch.
func (it Item) SubCategoryID() string {
	if it.IsRecurring {
		return it.Recurring.SubCategoryID
	}
	return it.OneOff.SubCategoryID
}

// TargetMinutes returns the item's target duration, 0 when the plan
// has none.
func (it Item) TargetMinutes() int {
	if it.IsRecurring {
		return it.Recurring.TargetDurationMinutes
	}
	return it.OneOff.TargetDurationMinutes
}

// LoggedMinutes sums durationMinutes per subcategory across all
// records logged on the given date.
func LoggedMinutes(doc *models.AppData, date models.Day) map[string]int {
	minutes := make(map[string]int)
	for _, r := range doc.Records {
		if r.Date == date {
			minutes[r.SubCategoryID] += r.DurationMinutes
		}
	}
	return minutes
}

// Resolve returns the unified completion view for a date: all one-off
// plans for that date in list order, followed by all recurring plans
// active on that date in list order. Callers depend on this ordering
// for stable rendering.
//
// A plan counts as completed once the subcategory's accumulated
// minutes reach its target; a plan with no target is satisfied
// immediately (a binary "did you log at all" check).
func Resolve(doc *models.AppData, date models.Day) []Item {
	minutes := LoggedMinutes(doc, date)

	items := make([]Item, 0, len(doc.Plans))
	for i := range doc.Plans {
		p := &doc.Plans[i]
		if p.Date != date {
			continue
		}
		current := minutes[p.SubCategoryID]
		items = append(items, Item{
			OneOff:              p,
			IsCompleted:         current >= p.TargetDurationMinutes,
			CompletedByRecordID: p.CompletedRecordID,
			CurrentMinutes:      current,
		})
	}

	weekday, ok := date.Weekday()
	if !ok {
		// Not a parseable day: recurring plans cannot match it.
		return items
	}

	for i := range doc.RecurringPlans {
		rp := &doc.RecurringPlans[i]
		// Plans never apply before their own start date. An empty
		// start date is legacy data and means always active.
		if rp.StartDate != "" && date.Before(rp.StartDate) {
			continue
		}
		if !activeOn(rp.DaysOfWeek, weekday) {
			continue
		}
		current := minutes[rp.SubCategoryID]
		item := Item{
			Recurring:      rp,
			IsRecurring:    true,
			IsCompleted:    current >= rp.TargetDurationMinutes,
			CurrentMinutes: current,
		}
		if item.IsCompleted {
			item.CompletedByRecordID = RecurringDoneMarker
		}
		items = append(items, item)
	}

	return items
}

func activeOn(daysOfWeek []int, weekday int) bool {
	for _, d := range daysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}
