package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Lanqingsong/DailyFlow/internal/journal"
	"github.com/Lanqingsong/DailyFlow/internal/migration"
	"github.com/Lanqingsong/DailyFlow/internal/models"
	"github.com/Lanqingsong/DailyFlow/internal/planner"
	"github.com/Lanqingsong/DailyFlow/internal/validation"
)

// AddRecord logs a new activity record for the current account,
// auto-completing a matching one-off plan when the day's accumulated
// time meets its target.
func (s *Session) AddRecord(in journal.RecordInput) (models.ActivityRecord, error) {
	if s.doc == nil {
		return models.ActivityRecord{}, ErrNoAccount
	}
	rec := journal.AddRecord(s.doc, in)
	if err := s.commit(); err != nil {
		return models.ActivityRecord{}, err
	}
	return rec, nil
}

// DeleteRecord removes a record and reverts any plan completion that
// referenced it.
func (s *Session) DeleteRecord(id string) error {
	if s.doc == nil {
		return ErrNoAccount
	}
	if !journal.DeleteRecord(s.doc, id) {
		return fmt.Errorf("record not found: %s", id)
	}
	return s.commit()
}

// AddPlan creates a one-off plan.
func (s *Session) AddPlan(in journal.PlanInput) (models.Plan, error) {
	if s.doc == nil {
		return models.Plan{}, ErrNoAccount
	}
	plan := journal.AddPlan(s.doc, in)
	if err := s.commit(); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}

// CancelPlan removes a one-off plan.
func (s *Session) CancelPlan(id string) error {
	if s.doc == nil {
		return ErrNoAccount
	}
	if !journal.CancelPlan(s.doc, id) {
		return fmt.Errorf("plan not found: %s", id)
	}
	return s.commit()
}

// AddRecurringPlan creates a recurring plan effective from today.
func (s *Session) AddRecurringPlan(in journal.RecurringPlanInput) (models.RecurringPlan, error) {
	if s.doc == nil {
		return models.RecurringPlan{}, ErrNoAccount
	}
	if len(in.DaysOfWeek) == 0 {
		return models.RecurringPlan{}, fmt.Errorf("at least one weekday is required")
	}
	plan := journal.AddRecurringPlan(s.doc, in)
	if err := s.commit(); err != nil {
		return models.RecurringPlan{}, err
	}
	return plan, nil
}

// DeleteRecurringPlan removes a recurring plan.
func (s *Session) DeleteRecurringPlan(id string) error {
	if s.doc == nil {
		return ErrNoAccount
	}
	if !journal.DeleteRecurringPlan(s.doc, id) {
		return fmt.Errorf("recurring plan not found: %s", id)
	}
	return s.commit()
}

// AddSubCategory appends a custom subcategory.
func (s *Session) AddSubCategory(categoryID models.CategoryID, name string) (models.SubCategory, error) {
	if s.doc == nil {
		return models.SubCategory{}, ErrNoAccount
	}
	if strings.TrimSpace(name) == "" {
		return models.SubCategory{}, fmt.Errorf("subcategory name is required")
	}
	sub := journal.AddSubCategory(s.doc, categoryID, name)
	if err := s.commit(); err != nil {
		return models.SubCategory{}, err
	}
	return sub, nil
}

// SetMood upserts the mood for a date.
func (s *Session) SetMood(date models.Day, mood models.MoodType) error {
	if s.doc == nil {
		return ErrNoAccount
	}
	journal.SetMood(s.doc, date, mood)
	return s.commit()
}

// UpdateProfile applies a partial profile update. PIN and language
// changes are validated before anything mutates.
func (s *Session) UpdateProfile(upd journal.ProfileUpdate) error {
	if s.doc == nil {
		return ErrNoAccount
	}
	if upd.PIN != nil {
		if err := validation.ValidatePIN(*upd.PIN); err != nil {
			return err
		}
	}
	if upd.Language != nil {
		if err := validation.ValidateLanguage(*upd.Language); err != nil {
			return err
		}
	}
	journal.UpdateUser(s.doc, upd)
	return s.commit()
}

// Reset clears the current account's histories, keeping the profile.
func (s *Session) Reset() error {
	if s.doc == nil {
		return ErrNoAccount
	}
	journal.Reset(s.doc)
	return s.commit()
}

// PlansForDate resolves the unified completion view for a date.
func (s *Session) PlansForDate(date models.Day) ([]planner.Item, error) {
	if s.doc == nil {
		return nil, ErrNoAccount
	}
	return planner.Resolve(s.doc, date), nil
}

// ExportData serializes the current document verbatim.
func (s *Session) ExportData() (string, error) {
	if s.doc == nil {
		return "", ErrNoAccount
	}
	data, err := json.Marshal(s.doc)
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return string(data), nil
}

// ImportData parses and migrates an externally supplied document and
// replaces the current one. Parse failures leave the session untouched
// and report false. The imported profile keeps the current account's
// id so the document stays bound to the account it is stored under.
func (s *Session) ImportData(jsonData string) bool {
	if s.doc == nil {
		return false
	}
	doc, _, err := migration.Parse([]byte(jsonData))
	if err != nil {
		return false
	}
	doc.User.ID = s.currentID
	s.doc = doc
	if err := s.commit(); err != nil {
		return false
	}
	return true
}

// OrphanedDocuments lists account document keys that have no registry
// entry, for the doctor command.
func (s *Session) OrphanedDocuments() ([]string, error) {
	keys, err := s.gw.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list storage keys: %w", err)
	}
	known := make(map[string]bool, len(s.registry))
	for _, u := range s.registry {
		known[u.ID] = true
	}
	var orphans []string
	for _, key := range keys {
		if !strings.HasPrefix(key, dataKeyPrefix) {
			continue
		}
		if !known[strings.TrimPrefix(key, dataKeyPrefix)] {
			orphans = append(orphans, key)
		}
	}
	return orphans, nil
}
