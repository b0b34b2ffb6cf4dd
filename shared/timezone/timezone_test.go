package timezone_test

import (
	"testing"
	"time"

	"hostel/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("expected midnight, got %s", today)
	}

	if today.Location() != timezone.GetLocation() {
		t.Errorf("expected app location, got %s", today.Location())
	}
}

func TestStartOfMonth(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2025-03-17")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	month := timezone.StartOfMonth(parsed)
	if month.Day() != 1 || month.Month() != time.March || month.Year() != 2025 {
		t.Errorf("unexpected start of month %s", month)
	}
}

func TestTimezoneFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if formatted := timezone.Format(parsed, time.DateOnly); formatted != "2024-01-01" {
		t.Errorf("expected round trip, got %s", formatted)
	}
}
