package resume

import (
	"strings"
	"time"
)

// FormatMonth turns a stored "2006-01" date into "Jan 2006". Unparseable or
// empty input renders as the empty string rather than failing the template.
func FormatMonth(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2006")
}

// FormatDateRange renders "Jan 2020 – Jan 2022". A current entry always ends
// in "Present", regardless of any stored end date.
func FormatDateRange(start, end string, current bool) string {
	from := FormatMonth(start)
	to := "Present"
	if !current {
		to = FormatMonth(end)
	}
	if from == "" && to == "" {
		return ""
	}
	return from + " – " + to
}

// EnsureHref normalizes an external link to an absolute URL: bare domains get
// an https scheme so templates can emit them as hyperlinks directly. Both
// render targets share this helper.
func EnsureHref(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
