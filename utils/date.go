package utils

import (
	"fmt"
	"regexp"
	"time"
)

// Menu dates travel as YYYY-MM-DD strings end to end; parsing happens at
// noon to stay clear of DST edges, exactly like the dashboard date picker.

const dateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var frenchMonthsShort = [...]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

var frenchMonthsLong = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD string to a time at noon local time.
func ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.Add(12 * time.Hour), nil
}

// TodayString returns today's date in YYYY-MM-DD, local timezone.
func TodayString() string {
	return time.Now().Format(dateLayout)
}

// NavigateDate shifts a YYYY-MM-DD date by the given number of days.
func NavigateDate(s string, days int) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(dateLayout), nil
}

// DaysDiff returns the signed day count between date and today
// (positive = future).
func DaysDiff(s string) (int, error) {
	t, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	today, _ := ParseDate(TodayString())
	return int(t.Sub(today).Hours() / 24), nil
}

// FormatDateLong renders a date as "lundi 13 janvier".
func FormatDateLong(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s %d %s",
		frenchWeekdays[int(t.Weekday())], t.Day(), frenchMonthsLong[int(t.Month())-1])
}

// FormatDateCompact renders a date as "2-janv.-06", the form used in the
// printed menu header.
func FormatDateCompact(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d-%s-%02d",
		t.Day(), frenchMonthsShort[int(t.Month())-1], t.Year()%100)
}

// RelativeDateLabel returns the French relative label for a date:
// Aujourd'hui, Hier, Demain, Dans N jours, Il y a N jours.
func RelativeDateLabel(s string) string {
	diff, err := DaysDiff(s)
	if err != nil {
		return s
	}
	switch {
	case diff == 0:
		return "Aujourd'hui"
	case diff == 1:
		return "Demain"
	case diff == -1:
		return "Hier"
	case diff > 1:
		return fmt.Sprintf("Dans %d jours", diff)
	default:
		return fmt.Sprintf("Il y a %d jours", -diff)
	}
}
