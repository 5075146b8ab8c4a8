package validation

import (
	"reflect"
	"testing"

	"github.com/Lanqingsong/DailyFlow/internal/models"
)

func TestValidatePIN(t *testing.T) {
	for _, pin := range []string{"", "0000", "1234", "9999"} {
		if err := ValidatePIN(pin); err != nil {
			t.Errorf("expected PIN %q to be accepted: %v", pin, err)
		}
	}
	for _, pin := range []string{"1", "123", "12345", "abcd", "12a4", "12 4", "١٢٣٤"} {
		if err := ValidatePIN(pin); err == nil {
			t.Errorf("expected PIN %q to be rejected", pin)
		}
	}
}

func TestValidateDay(t *testing.T) {
	if err := ValidateDay("2024-06-03"); err != nil {
		t.Errorf("expected a valid day: %v", err)
	}
	for _, day := range []models.Day{"", "2024-6-3", "2024-13-01", "2024-02-30", "yesterday"} {
		if err := ValidateDay(day); err == nil {
			t.Errorf("expected day %q to be rejected", day)
		}
	}
}

func TestValidateLanguage(t *testing.T) {
	if err := ValidateLanguage("en"); err != nil {
		t.Errorf("expected en to be accepted: %v", err)
	}
	if err := ValidateLanguage("zh"); err != nil {
		t.Errorf("expected zh to be accepted: %v", err)
	}
	if err := ValidateLanguage("fr"); err == nil {
		t.Error("expected fr to be rejected")
	}
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory(" Exercise ")
	if err != nil {
		t.Fatalf("ParseCategory failed: %v", err)
	}
	if got != models.CategoryExercise {
		t.Errorf("expected exercise, got %q", got)
	}
	if _, err := ParseCategory("sleep"); err == nil {
		t.Error("expected an unknown category to be rejected")
	}
}

func TestParseMood(t *testing.T) {
	got, err := ParseMood("HAPPY")
	if err != nil {
		t.Fatalf("ParseMood failed: %v", err)
	}
	if got != models.MoodHappy {
		t.Errorf("expected happy, got %q", got)
	}
	if _, err := ParseMood("meh"); err == nil {
		t.Error("expected an unknown mood to be rejected")
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"mon", []int{1}},
		{"Monday,FRI", []int{1, 5}},
		{"0,6", []int{0, 6}},
		{"mon,1,monday", []int{1}},
		{"sat, sun ,wed", []int{0, 3, 6}},
	}
	for _, tt := range tests {
		got, err := ParseWeekdays(tt.in)
		if err != nil {
			t.Errorf("ParseWeekdays(%q) failed: %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWeekdays_Invalid(t *testing.T) {
	for _, in := range []string{"", " , ", "funday", "7", "-1", "mon,8"} {
		if _, err := ParseWeekdays(in); err == nil {
			t.Errorf("expected ParseWeekdays(%q) to fail", in)
		}
	}
}
