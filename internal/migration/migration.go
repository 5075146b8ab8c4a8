// Package migration upgrades stored documents to the current schema
// version. Steps apply in increasing version order and every step
// assumes the invariants established by the ones before it; running
// the whole chain on an already-current document changes nothing.
package migration

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

// Migrate upgrades doc in place to models.CurrentVersion and reports
// whether anything changed. It never fails: absent fields are filled
// with safe defaults.
func Migrate(doc *models.AppData) bool {
	changed := false
	version := doc.Version

	if version < 1 {
		// v0 -> v1: the recurring-plans list must exist.
		if doc.RecurringPlans == nil {
			doc.RecurringPlans = []models.RecurringPlan{}
			changed = true
		}
	}

	if version < 2 {
		// v1 -> v2: every profile has a stable id and every record a
		// creation timestamp. Both are synthesized when absent.
		if doc.User.ID == "" {
			doc.User.ID = "user-" + uuid.New().String()
			changed = true
		}
		now := time.Now().UnixMilli()
		for i := range doc.Records {
			if doc.Records[i].Timestamp == 0 {
				doc.Records[i].Timestamp = now
				changed = true
			}
		}
	}

	if doc.Version != models.CurrentVersion {
		doc.Version = models.CurrentVersion
		changed = true
	}

	return changed
}

// Parse unmarshals a stored or imported document and migrates it. The
// second result reports whether migration changed the document, so the
// caller can persist the migrated form and skip re-migration on future
// loads.
func Parse(data []byte) (*models.AppData, bool, error) {
	var doc models.AppData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to parse document: %w", err)
	}
	changed := Migrate(&doc)
	return &doc, changed, nil
}
