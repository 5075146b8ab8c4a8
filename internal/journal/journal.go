// Package journal applies create/delete mutations to an in-memory
// document: records, plans, recurring plans, moods, subcategories, and
// the user profile. All functions mutate the document directly and
// leave persistence to the caller.
package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

// RecordInput carries the caller-supplied fields of a new record.
type RecordInput struct {
	Date            models.Day
	SubCategoryID   string
	CategoryID      models.CategoryID
	DurationMinutes int
	MetricValue     float64
	MetricUnit      string
	Note            string
	Media           []models.RecordMedia
}

// PlanInput carries the caller-supplied fields of a new one-off plan.
type PlanInput struct {
	Date                  models.Day
	SubCategoryID         string
	CategoryID            models.CategoryID
	TargetDurationMinutes int
}

// RecurringPlanInput carries the caller-supplied fields of a new
// recurring plan. The start date is never user-settable; it is stamped
// to the current day at creation.
type RecurringPlanInput struct {
	SubCategoryID         string
	CategoryID            models.CategoryID
	DaysOfWeek            []int
	TargetDurationMinutes int
}

// categoryFor trusts the subcategory's parent over the caller-supplied
// category so the denormalized field cannot drift at creation time.
// Unknown subcategories keep the caller's value (tolerated, see the
// display layer's unknown fallback).
func categoryFor(doc *models.AppData, subCategoryID string, fallback models.CategoryID) models.CategoryID {
	if sc, ok := doc.SubCategoryByID(subCategoryID); ok {
		return sc.CategoryID
	}
	return fallback
}

// AddRecord appends a new record and auto-completes at most one
// matching one-off plan: the first not-yet-completed plan for the same
// date and subcategory, if the day's accumulated minutes (including
// the new record) now meet its target. Recurring plans are never
// stamped; their completion is always recomputed at query time.
func AddRecord(doc *models.AppData, in RecordInput) models.ActivityRecord {
	rec := models.ActivityRecord{
		ID:              "rec-" + uuid.New().String(),
		Date:            in.Date,
		SubCategoryID:   in.SubCategoryID,
		CategoryID:      categoryFor(doc, in.SubCategoryID, in.CategoryID),
		DurationMinutes: in.DurationMinutes,
		MetricValue:     in.MetricValue,
		MetricUnit:      in.MetricUnit,
		Note:            in.Note,
		Media:           in.Media,
		Timestamp:       time.Now().UnixMilli(),
	}
	doc.Records = append(doc.Records, rec)

	total := 0
	for _, r := range doc.Records {
		if r.Date == in.Date && r.SubCategoryID == in.SubCategoryID {
			total += r.DurationMinutes
		}
	}
	for i := range doc.Plans {
		p := &doc.Plans[i]
		if p.Date != in.Date || p.SubCategoryID != in.SubCategoryID || p.CompletedRecordID != "" {
			continue
		}
		if total >= p.TargetDurationMinutes {
			p.CompletedRecordID = rec.ID
		}
		// Only the first matching plan is considered, stamped or not.
		break
	}

	return rec
}

// DeleteRecord removes a record by id and clears the completion
// back-reference on any plan it completed. The plan is not re-evaluated
// against the day's other records: only a newly added record can
// re-satisfy it.
func DeleteRecord(doc *models.AppData, id string) bool {
	found := false
	records := doc.Records[:0]
	for _, r := range doc.Records {
		if r.ID == id {
			found = true
			continue
		}
		records = append(records, r)
	}
	if !found {
		return false
	}
	doc.Records = records

	for i := range doc.Plans {
		if doc.Plans[i].CompletedRecordID == id {
			doc.Plans[i].CompletedRecordID = ""
		}
	}
	return true
}

// AddPlan appends a new one-off plan.
func AddPlan(doc *models.AppData, in PlanInput) models.Plan {
	plan := models.Plan{
		ID:                    "plan-" + uuid.New().String(),
		Date:                  in.Date,
		SubCategoryID:         in.SubCategoryID,
		CategoryID:            categoryFor(doc, in.SubCategoryID, in.CategoryID),
		TargetDurationMinutes: in.TargetDurationMinutes,
	}
	doc.Plans = append(doc.Plans, plan)
	return plan
}

// CancelPlan removes a one-off plan by id. A stamped completion
// reference is discarded along with the plan.
func CancelPlan(doc *models.AppData, id string) bool {
	for i := range doc.Plans {
		if doc.Plans[i].ID == id {
			doc.Plans = append(doc.Plans[:i], doc.Plans[i+1:]...)
			return true
		}
	}
	return false
}

// AddRecurringPlan appends a new recurring plan effective from today.
func AddRecurringPlan(doc *models.AppData, in RecurringPlanInput) models.RecurringPlan {
	plan := models.RecurringPlan{
		ID:                    "rec-plan-" + uuid.New().String(),
		SubCategoryID:         in.SubCategoryID,
		CategoryID:            categoryFor(doc, in.SubCategoryID, in.CategoryID),
		DaysOfWeek:            in.DaysOfWeek,
		TargetDurationMinutes: in.TargetDurationMinutes,
		StartDate:             models.Today(),
	}
	doc.RecurringPlans = append(doc.RecurringPlans, plan)
	return plan
}

// DeleteRecurringPlan removes a recurring plan by id.
func DeleteRecurringPlan(doc *models.AppData, id string) bool {
	for i := range doc.RecurringPlans {
		if doc.RecurringPlans[i].ID == id {
			doc.RecurringPlans = append(doc.RecurringPlans[:i], doc.RecurringPlans[i+1:]...)
			return true
		}
	}
	return false
}

// AddSubCategory appends a custom subcategory under a fixed category.
// Custom subcategories are always time-measured.
func AddSubCategory(doc *models.AppData, categoryID models.CategoryID, name string) models.SubCategory {
	sub := models.SubCategory{
		ID:          "custom-" + uuid.New().String(),
		CategoryID:  categoryID,
		Name:        name,
		IsCustom:    true,
		MeasureType: models.MeasureTime,
	}
	doc.SubCategories = append(doc.SubCategories, sub)
	return sub
}

// SetMood upserts the mood for a date, replacing any prior entry.
func SetMood(doc *models.AppData, date models.Day, mood models.MoodType) {
	moods := doc.Moods[:0]
	for _, m := range doc.Moods {
		if m.Date != date {
			moods = append(moods, m)
		}
	}
	doc.Moods = append(moods, models.DailyMood{Date: date, Mood: mood})
}

// ProfileUpdate lists the profile fields a caller may change. Nil
// fields are left untouched. The id is deliberately absent: it is
// assigned once and never changes.
type ProfileUpdate struct {
	Name     *string
	Avatar   *string
	PIN      *string
	Language *string
}

// UpdateUser applies a partial profile update.
func UpdateUser(doc *models.AppData, upd ProfileUpdate) {
	if upd.Name != nil {
		doc.User.Name = *upd.Name
	}
	if upd.Avatar != nil {
		doc.User.Avatar = *upd.Avatar
	}
	if upd.PIN != nil {
		doc.User.PIN = *upd.PIN
	}
	if upd.Language != nil {
		doc.User.Language = *upd.Language
	}
}

// Reset clears all histories but keeps the user profile.
func Reset(doc *models.AppData) {
	*doc = *models.NewAppData(doc.User)
}
