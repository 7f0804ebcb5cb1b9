package demodata

import (
	"time"

	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
)

// Event types whose past occurrences produce child check-in logs.
var checkInEventTypes = map[string]bool{
	congregation.EventTypeSundayService: true,
	"children-ministry":                 true,
	"youth-group":                       true,
}

// buildGuardians links every child to one or two adult guardians. The first
// guardian assigned is flagged primary.
func (r *run) buildGuardians(members []congregation.Member) []congregation.ChildGuardian {
	var adults []congregation.Member
	var children []congregation.Member
	for _, member := range members {
		if member.MemberType == congregation.MemberTypeAdult {
			adults = append(adults, member)
		} else {
			children = append(children, member)
		}
	}

	if len(adults) == 0 {
		return nil
	}

	var guardians []congregation.ChildGuardian
	for _, child := range children {
		count := pickWeighted(r.rng, guardianCountChoices)
		if count > len(adults) {
			count = len(adults)
		}

		used := make(map[string]bool, count)
		for j := 0; j < count; j++ {
			adult := pickOne(r.rng, adults)
			for used[adult.ID] {
				adult = pickOne(r.rng, adults)
			}
			used[adult.ID] = true

			guardians = append(guardians, congregation.ChildGuardian{
				ID:             uuid.NewString(),
				OrganizationID: r.organizationID,
				ChildID:        child.ID,
				GuardianID:     adult.ID,
				Relationship:   pickOne(r.rng, guardianRelationships),
				IsPrimary:      j == 0,
			})
		}
	}

	return guardians
}

// buildCheckIns logs children into past child-serving events. Only children
// with at least one registered guardian are eligible; a random guardian
// performs the check-in.
func (r *run) buildCheckIns(events []congregation.Event, members []congregation.Member, guardians []congregation.ChildGuardian) []congregation.ChildCheckIn {
	guardiansByChild := make(map[string][]congregation.ChildGuardian, len(guardians))
	for _, guardian := range guardians {
		guardiansByChild[guardian.ChildID] = append(guardiansByChild[guardian.ChildID], guardian)
	}

	var children []congregation.Member
	for _, member := range members {
		if member.MemberType == congregation.MemberTypeChild {
			children = append(children, member)
		}
	}

	var checkIns []congregation.ChildCheckIn
	for _, event := range events {
		if !checkInEventTypes[event.EventType] || !event.StartDate.Before(r.now) {
			continue
		}

		for _, child := range children {
			if !happens(r.rng, 0.7) {
				continue
			}
			childGuardians := guardiansByChild[child.ID]
			if len(childGuardians) == 0 {
				continue
			}

			checkIn := event.StartDate.Add(time.Duration(intRange(r.rng, -15, 30)) * time.Minute)
			checkOut := checkIn.Add(time.Duration(intRange(r.rng, 60, 180)) * time.Minute)

			entry := congregation.ChildCheckIn{
				ID:             uuid.NewString(),
				OrganizationID: r.organizationID,
				ChildID:        child.ID,
				EventID:        event.ID,
				CheckedInBy:    pickOne(r.rng, childGuardians).GuardianID,
				CheckInTime:    checkIn,
				CheckOutTime:   checkOut,
			}
			if note := pickWeighted(r.rng, checkInNoteChoices); note != "" {
				entry.Notes = &note
			}
			checkIns = append(checkIns, entry)
		}
	}

	return checkIns
}
