package service

import (
	"fmt"
	"time"
)

var hungarianMonths = [...]string{
	"január", "február", "március", "április", "május", "június",
	"július", "augusztus", "szeptember", "október", "november", "december",
}

var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// FormatHungarianDate renders an event date the way hu-HU long dates read:
// "2024. március 15.".
func FormatHungarianDate(raw string) (string, error) {
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return fmt.Sprintf("%d. %s %d.", t.Year(), hungarianMonths[t.Month()-1], t.Day()), nil
		}
	}
	return "", fmt.Errorf("unrecognised date %q", raw)
}
