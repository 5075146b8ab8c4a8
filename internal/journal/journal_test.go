package journal

import (
	"testing"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

func testDoc() *models.AppData {
	return models.NewAppData(models.UserProfile{ID: "user-1", Name: "User"})
}

func TestAddRecord_AutoCompletesPlanWhenTargetMet(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 30},
	}

	AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 20})
	if doc.Plans[0].CompletedRecordID != "" {
		t.Fatal("expected the plan to stay incomplete at 20/30 minutes")
	}

	second := AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 15})
	if doc.Plans[0].CompletedRecordID != second.ID {
		t.Errorf("expected the plan to be stamped with the second record's id, got %q", doc.Plans[0].CompletedRecordID)
	}
}

func TestAddRecord_OnlyFirstMatchingPlanConsidered(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 100},
		{ID: "plan-2", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 10},
	}

	// The first plan's target is not met, and the second plan is never
	// examined even though its target would be.
	AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 30})

	if doc.Plans[0].CompletedRecordID != "" {
		t.Error("expected plan-1 to stay incomplete")
	}
	if doc.Plans[1].CompletedRecordID != "" {
		t.Error("expected plan-2 not to be examined")
	}
}

func TestAddRecord_SkipsAlreadyCompletedPlans(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 10, CompletedRecordID: "rec-old"},
		{ID: "plan-2", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 10},
	}

	rec := AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 30})

	if doc.Plans[0].CompletedRecordID != "rec-old" {
		t.Error("expected the already-completed plan to keep its stamp")
	}
	if doc.Plans[1].CompletedRecordID != rec.ID {
		t.Error("expected the next incomplete plan to be stamped")
	}
}

func TestAddRecord_DerivesCategoryFromSubCategory(t *testing.T) {
	doc := testDoc()

	// Caller passes the wrong category; the subcategory's parent wins.
	rec := AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", CategoryID: models.CategoryWork, DurationMinutes: 10})

	if rec.CategoryID != models.CategoryExercise {
		t.Errorf("expected categoryId exercise, got %s", rec.CategoryID)
	}
}

func TestAddRecord_UnknownSubCategoryKeepsCallerCategory(t *testing.T) {
	doc := testDoc()

	rec := AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "gone", CategoryID: models.CategoryWork, DurationMinutes: 10})

	if rec.CategoryID != models.CategoryWork {
		t.Errorf("expected the caller's categoryId to be kept, got %s", rec.CategoryID)
	}
}

func TestDeleteRecord_RevertsCompletion(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 30},
	}

	AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 40})
	completing := AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 5})
	// The first record already satisfied the plan, so it carries the stamp.
	stamped := doc.Plans[0].CompletedRecordID
	if stamped == "" {
		t.Fatal("expected the plan to be completed")
	}
	if stamped == completing.ID {
		t.Fatal("expected the first record to carry the stamp")
	}

	if !DeleteRecord(doc, stamped) {
		t.Fatal("expected the record to be deleted")
	}

	// The reference is cleared even though the remaining record would
	// still not meet the target alone; no re-scan happens either way.
	if doc.Plans[0].CompletedRecordID != "" {
		t.Errorf("expected the completion reference to be cleared, got %q", doc.Plans[0].CompletedRecordID)
	}
	if len(doc.Records) != 1 {
		t.Errorf("expected 1 record left, got %d", len(doc.Records))
	}
}

func TestDeleteRecord_NoRescanAfterDeletion(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-01-01", SubCategoryID: "ex-run", TargetDurationMinutes: 30},
	}

	first := AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 40})
	AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 50})

	DeleteRecord(doc, first.ID)

	// The second record alone still exceeds the target, but the plan is
	// not re-evaluated against it.
	if doc.Plans[0].CompletedRecordID != "" {
		t.Errorf("expected no re-scan after deletion, got %q", doc.Plans[0].CompletedRecordID)
	}
}

func TestDeleteRecord_Missing(t *testing.T) {
	doc := testDoc()
	if DeleteRecord(doc, "nope") {
		t.Error("expected deleting a missing record to report false")
	}
}

func TestCancelPlan_DiscardsStamp(t *testing.T) {
	doc := testDoc()
	doc.Plans = []models.Plan{
		{ID: "plan-1", Date: "2024-01-01", SubCategoryID: "ex-run", CompletedRecordID: "rec-1"},
		{ID: "plan-2", Date: "2024-01-02", SubCategoryID: "ex-gym"},
	}

	if !CancelPlan(doc, "plan-1") {
		t.Fatal("expected the plan to be cancelled")
	}
	if len(doc.Plans) != 1 || doc.Plans[0].ID != "plan-2" {
		t.Errorf("expected only plan-2 to remain, got %+v", doc.Plans)
	}
}

func TestAddRecurringPlan_StampsToday(t *testing.T) {
	doc := testDoc()

	plan := AddRecurringPlan(doc, RecurringPlanInput{SubCategoryID: "ex-run", DaysOfWeek: []int{1, 3}, TargetDurationMinutes: 30})

	if plan.StartDate != models.Today() {
		t.Errorf("expected startDate %s, got %s", models.Today(), plan.StartDate)
	}
	if len(doc.RecurringPlans) != 1 {
		t.Errorf("expected 1 recurring plan, got %d", len(doc.RecurringPlans))
	}
}

func TestDeleteRecurringPlan(t *testing.T) {
	doc := testDoc()
	plan := AddRecurringPlan(doc, RecurringPlanInput{SubCategoryID: "ex-run", DaysOfWeek: []int{1}, TargetDurationMinutes: 30})

	if !DeleteRecurringPlan(doc, plan.ID) {
		t.Fatal("expected the recurring plan to be deleted")
	}
	if len(doc.RecurringPlans) != 0 {
		t.Errorf("expected no recurring plans, got %d", len(doc.RecurringPlans))
	}
}

func TestSetMood_UpsertsByDate(t *testing.T) {
	doc := testDoc()

	SetMood(doc, "2024-01-01", models.MoodHappy)
	SetMood(doc, "2024-01-02", models.MoodNeutral)
	SetMood(doc, "2024-01-01", models.MoodSad)

	if len(doc.Moods) != 2 {
		t.Fatalf("expected 2 moods, got %d", len(doc.Moods))
	}
	for _, m := range doc.Moods {
		if m.Date == "2024-01-01" && m.Mood != models.MoodSad {
			t.Errorf("expected the mood for 2024-01-01 to be replaced, got %s", m.Mood)
		}
	}
}

func TestAddSubCategory(t *testing.T) {
	doc := testDoc()
	before := len(doc.SubCategories)

	sub := AddSubCategory(doc, models.CategoryStudy, "Piano")

	if !sub.IsCustom {
		t.Error("expected the subcategory to be custom")
	}
	if sub.MeasureType != models.MeasureTime {
		t.Errorf("expected time measure, got %s", sub.MeasureType)
	}
	if len(doc.SubCategories) != before+1 {
		t.Errorf("expected %d subcategories, got %d", before+1, len(doc.SubCategories))
	}
}

func TestReset_KeepsProfile(t *testing.T) {
	doc := testDoc()
	doc.User.PIN = "1234"
	AddRecord(doc, RecordInput{Date: "2024-01-01", SubCategoryID: "ex-run", DurationMinutes: 10})
	SetMood(doc, "2024-01-01", models.MoodHappy)

	Reset(doc)

	if len(doc.Records) != 0 || len(doc.Moods) != 0 {
		t.Error("expected histories to be cleared")
	}
	if doc.User.Name != "User" || doc.User.PIN != "1234" {
		t.Errorf("expected the profile to be kept, got %+v", doc.User)
	}
}

func TestUpdateUser_PartialUpdate(t *testing.T) {
	doc := testDoc()
	name := "Renamed"
	pin := "0000"

	UpdateUser(doc, ProfileUpdate{Name: &name, PIN: &pin})

	if doc.User.Name != "Renamed" || doc.User.PIN != "0000" {
		t.Errorf("unexpected profile after update: %+v", doc.User)
	}
	if doc.User.ID != "user-1" {
		t.Errorf("expected the id to be untouched, got %s", doc.User.ID)
	}
}
