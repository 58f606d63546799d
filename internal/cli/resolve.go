package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mise/internal/domain"
)

const dateLayout = "2006-01-02"

// resolveDate turns a --date flag value into a UTC calendar date. Empty means
// today; "today"/"tomorrow"/"yesterday" are accepted alongside 2006-01-02.
func resolveDate(flag string) (time.Time, error) {
	return resolveDateFrom(flag, time.Now())
}

func resolveDateFrom(flag string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	t, err := time.Parse(dateLayout, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD, today, tomorrow or yesterday)", flag)
	}
	return t, nil
}

// resolveSlot parses a meal slot argument.
func resolveSlot(arg string) (domain.MealType, error) {
	slot, ok := domain.ParseMealType(strings.ToLower(strings.TrimSpace(arg)))
	if !ok {
		return "", fmt.Errorf("invalid meal slot %q (want breakfast, lunch or dinner)", arg)
	}
	return slot, nil
}
