package demodata

import (
	"fmt"
	"strings"
	"time"

	"church-app-go/internal/domain/congregation"
)

type eventTemplate struct {
	Title     string
	EventType string
	Location  string
	Duration  time.Duration
}

var (
	sundayServiceTemplate = eventTemplate{
		Title:     "Sunday Service",
		EventType: congregation.EventTypeSundayService,
		Location:  "Main Sanctuary",
		Duration:  90 * time.Minute,
	}
	bibleStudyTemplate = eventTemplate{
		Title:     "Wednesday Bible Study",
		EventType: congregation.EventTypeBibleStudy,
		Location:  "Fellowship Hall",
		Duration:  60 * time.Minute,
	}
	fellowshipTemplate = eventTemplate{
		Title:     "Monthly Fellowship Dinner",
		EventType: congregation.EventTypeFellowship,
		Location:  "Fellowship Hall",
		Duration:  120 * time.Minute,
	}
)

// buildEvents produces one Sunday service (10:00) and one Wednesday Bible
// study (19:00) per generated week, plus a monthly fellowship dinner on the
// first Saturday of the month whenever a week falls in the first calendar week
// of its month.
func (r *run) buildEvents(weeks int) []congregation.Event {
	if weeks <= 0 {
		return nil
	}

	events := make([]congregation.Event, 0, weeks*2+weeks/4+1)
	for i := weeks - 1; i >= 0; i-- {
		sunday := r.weekStart(i)

		events = append(events, r.buildEvent(sundayServiceTemplate, sunday.Add(10*time.Hour)))
		events = append(events, r.buildEvent(bibleStudyTemplate, sunday.AddDate(0, 0, 3).Add(19*time.Hour)))

		if sunday.Day() <= 7 {
			saturday := firstSaturday(sunday).Add(18 * time.Hour)
			events = append(events, r.buildEvent(fellowshipTemplate, saturday))
		}
	}

	return events
}

func (r *run) buildEvent(tmpl eventTemplate, start time.Time) congregation.Event {
	return congregation.Event{
		// Slug, organization, and start timestamp keep event ids stable
		// across reruns (a rerun upserts instead of duplicating the
		// calendar) without colliding between tenants that share a
		// calendar day.
		ID:             fmt.Sprintf("%s-%s-%d", slugify(tmpl.Title), r.organizationID, start.Unix()),
		OrganizationID: r.organizationID,
		Title:          tmpl.Title,
		EventType:      tmpl.EventType,
		StartDate:      start,
		EndDate:        start.Add(tmpl.Duration),
		Location:       tmpl.Location,
	}
}

func firstSaturday(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	offset := (int(time.Saturday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}

func slugify(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	lastDash := true
	for _, ch := range strings.ToLower(value) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
