package migration

import (
	"reflect"
	"testing"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

func TestMigrate_AddsRecurringPlansList(t *testing.T) {
	doc := &models.AppData{
		Version:       0,
		SubCategories: models.DefaultSubCategories(),
		User:          models.UserProfile{Name: "User"},
	}

	changed := Migrate(doc)

	if !changed {
		t.Fatal("expected migration to report a change")
	}
	if doc.RecurringPlans == nil {
		t.Error("expected recurringPlans to exist after migration")
	}
	if len(doc.RecurringPlans) != 0 {
		t.Errorf("expected empty recurringPlans, got %d entries", len(doc.RecurringPlans))
	}
	if doc.Version != models.CurrentVersion {
		t.Errorf("expected version %d, got %d", models.CurrentVersion, doc.Version)
	}
}

func TestMigrate_SynthesizesUserID(t *testing.T) {
	doc := &models.AppData{Version: 1, User: models.UserProfile{Name: "User"}}

	Migrate(doc)

	if doc.User.ID == "" {
		t.Error("expected a user id to be synthesized")
	}
}

func TestMigrate_SynthesizesRecordTimestamps(t *testing.T) {
	doc := &models.AppData{
		Version: 1,
		User:    models.UserProfile{ID: "user-1", Name: "User"},
		Records: []models.ActivityRecord{
			{ID: "rec-1", Date: "2024-01-01", SubCategoryID: "ex-run"},
			{ID: "rec-2", Date: "2024-01-02", SubCategoryID: "ex-run", Timestamp: 42},
		},
	}

	Migrate(doc)

	if doc.Records[0].Timestamp == 0 {
		t.Error("expected a timestamp to be synthesized for rec-1")
	}
	if doc.Records[1].Timestamp != 42 {
		t.Errorf("expected rec-2 timestamp to be preserved, got %d", doc.Records[1].Timestamp)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	doc := &models.AppData{
		Version: 0,
		User:    models.UserProfile{Name: "User"},
		Records: []models.ActivityRecord{{ID: "rec-1", Date: "2024-01-01"}},
	}

	Migrate(doc)
	first := *doc
	firstRecords := append([]models.ActivityRecord(nil), doc.Records...)

	changed := Migrate(doc)

	if changed {
		t.Error("expected the second migration to be a no-op")
	}
	if doc.Version != models.CurrentVersion {
		t.Errorf("expected version %d, got %d", models.CurrentVersion, doc.Version)
	}
	if doc.User != first.User {
		t.Error("expected the second migration to leave the profile untouched")
	}
	if !reflect.DeepEqual(doc.Records, firstRecords) {
		t.Error("expected the second migration to leave records untouched")
	}
}

func TestMigrate_CurrentDocumentUnchanged(t *testing.T) {
	doc := models.NewAppData(models.UserProfile{ID: "user-1", Name: "User"})

	if Migrate(doc) {
		t.Error("expected no change for a document already at the current version")
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func TestParse_MigratesLegacyDocument(t *testing.T) {
	raw := []byte(`{"subCategories":[],"records":[{"id":"rec-1","date":"2024-01-01","subCategoryId":"ex-run","durationMinutes":30,"note":"","media":[]}],"plans":[],"moods":[],"user":{"name":"Old","avatar":"","language":"zh"}}`)

	doc, changed, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !changed {
		t.Error("expected the legacy document to be migrated")
	}
	if doc.Version != models.CurrentVersion {
		t.Errorf("expected version %d, got %d", models.CurrentVersion, doc.Version)
	}
	if doc.RecurringPlans == nil {
		t.Error("expected recurringPlans to exist")
	}
	if doc.User.ID == "" {
		t.Error("expected a user id")
	}
	if doc.Records[0].Timestamp == 0 {
		t.Error("expected a record timestamp")
	}
}
