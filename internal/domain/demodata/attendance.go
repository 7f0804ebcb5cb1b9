package demodata

import (
	"math"

	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
)

var attendanceBase = map[string]float64{
	congregation.EventTypeSundayService: 70,
	congregation.EventTypeBibleStudy:    24,
	congregation.EventTypeFellowship:    50,
}

// Month-indexed seasonal curve (January first); attendance dips in summer.
var seasonalFactor = [12]float64{
	1.0, 1.0, 1.05, 1.05, 1.0, 0.85, 0.75, 0.75, 0.95, 1.05, 1.1, 1.15,
}

var attendanceProbability = map[string]map[string]float64{
	congregation.EventTypeSundayService: {
		congregation.FrequencyRegular:    0.9,
		congregation.FrequencyOccasional: 0.5,
		congregation.FrequencyRare:       0.2,
	},
	congregation.EventTypeBibleStudy: {
		congregation.FrequencyRegular:    0.4,
		congregation.FrequencyOccasional: 0.15,
		congregation.FrequencyRare:       0.05,
	},
	congregation.EventTypeFellowship: {
		congregation.FrequencyRegular:    0.6,
		congregation.FrequencyOccasional: 0.35,
		congregation.FrequencyRare:       0.15,
	},
}

// buildAttendance marks a subset of members present at every event that has
// already started. Members are shuffled and admitted independently until the
// expected headcount for the event is reached or the pool runs out.
func (r *run) buildAttendance(events []congregation.Event, members []congregation.Member) []congregation.Attendance {
	if len(members) == 0 {
		return nil
	}

	var attendance []congregation.Attendance
	for _, event := range events {
		if !event.StartDate.Before(r.now) {
			continue
		}

		expected := r.expectedAttendance(event)
		admitted := 0

		for _, member := range shuffled(r.rng, members) {
			if admitted >= expected {
				break
			}
			if !happens(r.rng, attendanceChance(member, event.EventType)) {
				continue
			}

			status := congregation.AttendanceCheckedIn
			if !happens(r.rng, 0.9) {
				status = congregation.AttendanceAttending
			}

			attendance = append(attendance, congregation.Attendance{
				ID:             uuid.NewString(),
				OrganizationID: r.organizationID,
				EventID:        event.ID,
				MemberID:       member.ID,
				Status:         status,
			})
			admitted++
		}
	}

	return attendance
}

func (r *run) expectedAttendance(event congregation.Event) int {
	base, ok := attendanceBase[event.EventType]
	if !ok {
		base = 20
	}
	season := seasonalFactor[event.StartDate.Month()-1]
	return int(math.Round(base * season * uniformRange(r.rng, 0.8, 1.2)))
}

func attendanceChance(member congregation.Member, eventType string) float64 {
	byBucket, ok := attendanceProbability[eventType]
	if !ok {
		return 0
	}
	return byBucket[frequencyBucket(member)]
}

// Visitors always land in the rare bucket regardless of their own frequency.
func frequencyBucket(member congregation.Member) string {
	if member.Status == congregation.StatusVisitor {
		return congregation.FrequencyRare
	}
	return member.AttendanceFrequency
}
