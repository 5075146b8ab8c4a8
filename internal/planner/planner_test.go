package planner

import (
	"testing"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

func testDoc() *models.AppData {
	return models.NewAppData(models.UserProfile{ID: "user-1", Name: "User"})
}

func TestResolve_OneOffBeforeRecurring(t *testing.T) {
	doc := testDoc()
	// 2024-06-10 is a Monday.
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-06-10", SubCategoryID: "ex-run", CategoryID: models.CategoryExercise, TargetDurationMinutes: 30},
	}
	doc.RecurringPlans = []models.RecurringPlan{
		{ID: "rplan-1", SubCategoryID: "ex-gym", CategoryID: models.CategoryExercise, DaysOfWeek: []int{1}, TargetDurationMinutes: 45, StartDate: "2024-06-10"},
	}

	items := Resolve(doc, "2024-06-10")

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].IsRecurring || items[0].OneOff == nil || items[0].OneOff.ID != "plan-1" {
		t.Errorf("expected the one-off plan first, got %+v", items[0])
	}
	if !items[1].IsRecurring || items[1].Recurring == nil || items[1].Recurring.ID != "rplan-1" {
		t.Errorf("expected the recurring plan second, got %+v", items[1])
	}
}

func TestResolve_RecurringExcludedBeforeStartDate(t *testing.T) {
	doc := testDoc()
	// Both dates are Mondays; the plan starts on the later one.
	doc.RecurringPlans = []models.RecurringPlan{
		{ID: "rplan-1", SubCategoryID: "ex-run", DaysOfWeek: []int{1}, TargetDurationMinutes: 30, StartDate: "2024-06-10"},
	}

	if items := Resolve(doc, "2024-06-03"); len(items) != 0 {
		t.Errorf("expected no items before the start date, got %d", len(items))
	}
	if items := Resolve(doc, "2024-06-10"); len(items) != 1 {
		t.Errorf("expected the plan on its start date, got %d items", len(items))
	}
}

func TestResolve_RecurringWeekdayFilter(t *testing.T) {
	doc := testDoc()
	doc.RecurringPlans = []models.RecurringPlan{
		{ID: "rplan-1", SubCategoryID: "ex-run", DaysOfWeek: []int{2, 4}, TargetDurationMinutes: 30, StartDate: "2024-01-01"},
	}

	// 2024-06-11 is a Tuesday (2), 2024-06-12 a Wednesday (3).
	if items := Resolve(doc, "2024-06-11"); len(items) != 1 {
		t.Errorf("expected the plan on Tuesday, got %d items", len(items))
	}
	if items := Resolve(doc, "2024-06-12"); len(items) != 0 {
		t.Errorf("expected no items on Wednesday, got %d", len(items))
	}
}

func TestResolve_LegacyRecurringAlwaysActive(t *testing.T) {
	doc := testDoc()
	doc.RecurringPlans = []models.RecurringPlan{
		{ID: "rplan-1", SubCategoryID: "ex-run", DaysOfWeek: []int{1}, TargetDurationMinutes: 30},
	}

	// Far in the past, but a Monday: a plan without a start date matches.
	items := Resolve(doc, "2001-01-01")
	if len(items) != 1 {
		t.Fatalf("expected legacy plan to be active, got %d items", len(items))
	}
}

func TestResolve_CompletionThreshold(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-06-10", SubCategoryID: "ex-run", TargetDurationMinutes: 30},
	}
	doc.Records = []models.ActivityRecord{
		{ID: "rec-1", Date: "2024-06-10", SubCategoryID: "ex-run", DurationMinutes: 20, Timestamp: 1},
	}

	items := Resolve(doc, "2024-06-10")
	if items[0].IsCompleted {
		t.Error("expected the plan to be incomplete at 20/30 minutes")
	}
	if items[0].CurrentMinutes != 20 {
		t.Errorf("expected 20 current minutes, got %d", items[0].CurrentMinutes)
	}

	doc.Records = append(doc.Records, models.ActivityRecord{
		ID: "rec-2", Date: "2024-06-10", SubCategoryID: "ex-run", DurationMinutes: 15, Timestamp: 2,
	})

	items = Resolve(doc, "2024-06-10")
	if !items[0].IsCompleted {
		t.Error("expected the plan to be complete at 35/30 minutes")
	}
	if items[0].CurrentMinutes != 35 {
		t.Errorf("expected 35 current minutes, got %d", items[0].CurrentMinutes)
	}
}

func TestResolve_ZeroTargetPlanAlwaysCompleted(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-06-10", SubCategoryID: "ex-run"},
	}

	items := Resolve(doc, "2024-06-10")
	if !items[0].IsCompleted {
		t.Error("expected a zero-target plan to be completed with no records")
	}
}

func TestResolve_RecurringDoneMarker(t *testing.T) {
	doc := testDoc()
	doc.RecurringPlans = []models.RecurringPlan{
		{ID: "rplan-1", SubCategoryID: "ex-run", DaysOfWeek: []int{1}, TargetDurationMinutes: 30, StartDate: "2024-01-01"},
	}
	doc.Records = []models.ActivityRecord{
		{ID: "rec-1", Date: "2024-06-10", SubCategoryID: "ex-run", DurationMinutes: 40, Timestamp: 1},
	}

	items := Resolve(doc, "2024-06-10")
	if !items[0].IsCompleted {
		t.Fatal("expected the recurring plan to be completed")
	}
	if items[0].CompletedByRecordID != RecurringDoneMarker {
		t.Errorf("expected the synthetic marker, got %q", items[0].CompletedByRecordID)
	}
}

func TestResolve_SurfacesStoredBackReference(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-06-10", SubCategoryID: "ex-run", TargetDurationMinutes: 30, CompletedRecordID: "rec-1"},
	}
	doc.Records = []models.ActivityRecord{
		{ID: "rec-1", Date: "2024-06-10", SubCategoryID: "ex-run", DurationMinutes: 30, Timestamp: 1},
	}

	items := Resolve(doc, "2024-06-10")
	if items[0].CompletedByRecordID != "rec-1" {
		t.Errorf("expected the stored back-reference, got %q", items[0].CompletedByRecordID)
	}
}

func TestResolve_RecordsOnOtherDatesIgnored(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-06-10", SubCategoryID: "ex-run", TargetDurationMinutes: 30},
	}
	doc.Records = []models.ActivityRecord{
		{ID: "rec-1", Date: "2024-06-09", SubCategoryID: "ex-run", DurationMinutes: 60, Timestamp: 1},
	}

	items := Resolve(doc, "2024-06-10")
	if items[0].IsCompleted {
		t.Error("expected time logged on another date not to count")
	}
	if items[0].CurrentMinutes != 0 {
		t.Errorf("expected 0 current minutes, got %d", items[0].CurrentMinutes)
	}
}
