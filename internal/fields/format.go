package fields

import (
	"fmt"
	"time"
)

// FormatCurrency renders a revenue-style value for display. USD amounts
// read as millions, INR amounts as crores, matching the form's input
// conventions. Non-numeric input passes through untouched.
func FormatCurrency(value, currency string) string {
	if value == "" {
		return "N/A"
	}
	number, ok := Number(value)
	if !ok {
		return value
	}
	if currency == "USD" {
		return fmt.Sprintf("$%.0fM", number)
	}
	return fmt.Sprintf("₹%.0fCr", number)
}

// FormatDate renders an ISO-8601 date as "January 2006". An empty input
// yields the current month; unparseable input passes through untouched.
func FormatDate(dateStr string) string {
	if dateStr == "" {
		return time.Now().Format("January 2006")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01"} {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			return parsed.Format("January 2006")
		}
	}
	return dateStr
}
