// Package validation checks and parses the raw inputs the presentation
// layer hands to the engine.
package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

// ValidatePIN accepts either an empty PIN (none configured) or exactly
// four digits.
func ValidatePIN(pin string) error {
	if pin == "" {
		return nil
	}
	if len(pin) != 4 {
		return fmt.Errorf("PIN must be exactly 4 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("PIN must be exactly 4 digits")
		}
	}
	return nil
}

// ValidateDay checks a YYYY-MM-DD calendar day.
func ValidateDay(day models.Day) error {
	if !day.Valid() {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", string(day))
	}
	return nil
}

// ValidateLanguage accepts the two supported language tags.
func ValidateLanguage(lang string) error {
	if lang != "en" && lang != "zh" {
		return fmt.Errorf("invalid language %q, use en or zh", lang)
	}
	return nil
}

// ParseCategory resolves a category id against the fixed set.
func ParseCategory(s string) (models.CategoryID, error) {
	id := models.CategoryID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := models.CategoryByID(id); !ok {
		return "", fmt.Errorf("invalid category %q (exercise|health|study|work)", s)
	}
	return id, nil
}

// ParseMood resolves a mood name.
func ParseMood(s string) (models.MoodType, error) {
	switch m := models.MoodType(strings.ToLower(strings.TrimSpace(s))); m {
	case models.MoodHappy, models.MoodExcited, models.MoodNeutral, models.MoodStressed, models.MoodSad:
		return m, nil
	default:
		return "", fmt.Errorf("invalid mood %q (happy|excited|neutral|stressed|sad)", s)
	}
}

// ParseWeekdays parses a comma-separated list of weekday names or
// indices into a sorted, de-duplicated set of 0=Sunday..6=Saturday
// indices. At least one weekday is required.
func ParseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			seen[wd] = true
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		seen[num] = true
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("at least one weekday is required")
	}

	weekdays := make([]int, 0, len(seen))
	for wd := range seen {
		weekdays = append(weekdays, wd)
	}
	sort.Ints(weekdays)
	return weekdays, nil
}
