package models

// CategoryID identifies one of the four fixed top-level categories.
// The set is closed; custom subcategories always hang off one of these.
type CategoryID string

const (
	CategoryExercise CategoryID = "exercise"
	CategoryHealth   CategoryID = "health"
	CategoryStudy    CategoryID = "study"
	CategoryWork     CategoryID = "work"
)

// MeasureType controls how a record's value is interpreted.
type MeasureType string

const (
	MeasureTime   MeasureType = "time"
	MeasureNumber MeasureType = "number"
	MeasureText   MeasureType = "text"
)

type MoodType string

const (
	MoodHappy    MoodType = "happy"
	MoodExcited  MoodType = "excited"
	MoodNeutral  MoodType = "neutral"
	MoodStressed MoodType = "stressed"
	MoodSad      MoodType = "sad"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaAudio MediaKind = "audio"
)

// SubCategory is a user-facing activity type under a fixed category.
// A default set is seeded at document creation; custom ones are
// appended and never removed or re-typed afterwards.
type SubCategory struct {
	ID          string      `json:"id"`
	CategoryID  CategoryID  `json:"categoryId"`
	Name        string      `json:"name"`
	IsCustom    bool        `json:"isCustom"`
	MeasureType MeasureType `json:"measureType"`
	Unit        string      `json:"unit,omitempty"`
}

// RecordMedia is one attachment on a record. Data is an opaque
// already-encoded payload (base64 data URL in practice).
type RecordMedia struct {
	Kind      MediaKind `json:"type"`
	Data      string    `json:"data"`
	Timestamp int64     `json:"timestamp"`
}

// ActivityRecord is one logged activity. Records are immutable once
// created; the only lifecycle operation after creation is deletion.
// CategoryID duplicates the subcategory's parent and must match it at
// creation time.
type ActivityRecord struct {
	ID              string        `json:"id"`
	Date            Day           `json:"date"`
	SubCategoryID   string        `json:"subCategoryId"`
	CategoryID      CategoryID    `json:"categoryId"`
	DurationMinutes int           `json:"durationMinutes"`
	MetricValue     float64       `json:"metricValue,omitempty"`
	MetricUnit      string        `json:"metricUnit,omitempty"`
	Note            string        `json:"note"`
	Media           []RecordMedia `json:"media"`
	Timestamp       int64         `json:"timestamp"` // creation time, unix milliseconds
}

// Plan is a one-off intention for a single date. CompletedRecordID is
// set and cleared only by the journal's auto-complete logic.
type Plan struct {
	ID                    string     `json:"id"`
	Date                  Day        `json:"date"`
	SubCategoryID         string     `json:"subCategoryId"`
	CategoryID            CategoryID `json:"categoryId"`
	TargetDurationMinutes int        `json:"targetDurationMinutes,omitempty"`
	CompletedRecordID     string     `json:"completedRecordId,omitempty"`
}

// RecurringPlan is a weekly-recurring intention active from StartDate
// onward on the listed weekdays (0=Sunday..6=Saturday). It carries no
// completion state: completion is always computed from records.
type RecurringPlan struct {
	ID                    string     `json:"id"`
	SubCategoryID         string     `json:"subCategoryId"`
	CategoryID            CategoryID `json:"categoryId"`
	DaysOfWeek            []int      `json:"daysOfWeek"`
	TargetDurationMinutes int        `json:"targetDurationMinutes"`
	StartDate             Day        `json:"startDate,omitempty"` // empty on legacy data: always active
}

// DailyMood holds at most one mood per date per account.
type DailyMood struct {
	Date Day      `json:"date"`
	Mood MoodType `json:"mood"`
}

type UserProfile struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	PIN      string `json:"pin,omitempty"` // exactly 4 digits, or empty when unset
	Language string `json:"language"`
}

// UserSummary is the registry's denormalized view of an account,
// enough to list accounts without loading their documents.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	HasPin bool   `json:"hasPin"`
}

// AppData is the full versioned document for one account. Writes are
// always whole-document replace; User.ID must equal the account id the
// document is stored under.
type AppData struct {
	Version        int              `json:"version"`
	SubCategories  []SubCategory    `json:"subCategories"`
	Records        []ActivityRecord `json:"records"`
	Plans          []Plan           `json:"plans"`
	RecurringPlans []RecurringPlan  `json:"recurringPlans"`
	Moods          []DailyMood      `json:"moods"`
	User           UserProfile      `json:"user"`
}

// Summary projects the registry entry for this document.
func (d *AppData) Summary() UserSummary {
	return UserSummary{
		ID:     d.User.ID,
		Name:   d.User.Name,
		Avatar: d.User.Avatar,
		HasPin: d.User.PIN != "",
	}
}

// SubCategoryByID looks up a subcategory in this document.
func (d *AppData) SubCategoryByID(id string) (SubCategory, bool) {
	for _, sc := range d.SubCategories {
		if sc.ID == id {
			return sc, true
		}
	}
	return SubCategory{}, false
}
