package fixed

import (
	"testing"
	"time"
)

func TestIsCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("matches the current year and month", func(t *testing.T) {
		if !IsCurrentMonth(2024, 2, now) {
			t.Error("expected March 2024 to be current")
		}
	})

	t.Run("rejects a different month", func(t *testing.T) {
		if IsCurrentMonth(2024, 1, now) {
			t.Error("expected February 2024 to not be current")
		}
	})

	t.Run("rejects the same month of another year", func(t *testing.T) {
		if IsCurrentMonth(2023, 2, now) {
			t.Error("expected March 2023 to not be current")
		}
	})
}

func TestPreviousMonth(t *testing.T) {
	t.Run("mid-year goes back one month", func(t *testing.T) {
		now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		year, month := PreviousMonth(now)
		if year != 2024 || month != 1 {
			t.Errorf("expected 2024/1, got %d/%d", year, month)
		}
	})

	t.Run("january rolls back to december of the prior year", func(t *testing.T) {
		now := time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC)
		year, month := PreviousMonth(now)
		if year != 2023 || month != 11 {
			t.Errorf("expected 2023/11, got %d/%d", year, month)
		}
	})

	t.Run("december goes back to november", func(t *testing.T) {
		now := time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)
		year, month := PreviousMonth(now)
		if year != 2024 || month != 10 {
			t.Errorf("expected 2024/10, got %d/%d", year, month)
		}
	})
}

func TestIsValidMonth(t *testing.T) {
	for _, month := range []int{0, 5, 11} {
		if !isValidMonth(month) {
			t.Errorf("expected month %d to be valid", month)
		}
	}
	for _, month := range []int{-1, 12, 100} {
		if isValidMonth(month) {
			t.Errorf("expected month %d to be invalid", month)
		}
	}
}
