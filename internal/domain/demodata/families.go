package demodata

import (
	"fmt"

	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
)

const primaryContactShare = 0.6

// buildFamilies forms a family around roughly 60% of the adults: the first N
// adults in generation order become primary contacts. The spouse pick is
// positional (the next adult in sequence), so adjacent adults tend to pair up.
// Children are attached from a not-yet-assigned pool. A family that cannot
// reach two members even after the fallback adult is discarded, keeping the
// minimum-size invariant intact.
func (r *run) buildFamilies(members []congregation.Member) ([]congregation.Family, map[string][]string) {
	var adults []congregation.Member
	var children []congregation.Member
	for _, member := range members {
		if member.MemberType == congregation.MemberTypeAdult {
			adults = append(adults, member)
		} else {
			children = append(children, member)
		}
	}

	familyCount := int(float64(len(adults)) * primaryContactShare)

	assignedAdults := make(map[string]bool, len(adults))
	assignedChildren := make(map[string]bool, len(children))

	var families []congregation.Family
	assignments := make(map[string][]string, familyCount)

	for i := 0; i < familyCount; i++ {
		primary := adults[i]
		memberIDs := []string{primary.ID}
		assignedAdults[primary.ID] = true

		if i+1 < len(adults) && happens(r.rng, 0.8) {
			spouse := adults[i+1]
			memberIDs = append(memberIDs, spouse.ID)
			assignedAdults[spouse.ID] = true
		}

		if happens(r.rng, 0.7) {
			want := intRange(r.rng, 1, 3)
			for _, child := range children {
				if want == 0 {
					break
				}
				if assignedChildren[child.ID] {
					continue
				}
				memberIDs = append(memberIDs, child.ID)
				assignedChildren[child.ID] = true
				want--
			}
		}

		if len(memberIDs) < 2 {
			fallback, ok := firstUnassigned(adults, assignedAdults)
			if !ok {
				continue
			}
			memberIDs = append(memberIDs, fallback.ID)
			assignedAdults[fallback.ID] = true
		}

		family := congregation.Family{
			ID:                    uuid.NewString(),
			OrganizationID:        r.organizationID,
			FamilyName:            primary.Lastname + " Family",
			PrimaryContactID:      primary.ID,
			Address:               r.buildAddress(),
			EmergencyContactName:  pickOne(r.rng, adultFemaleNames) + " " + pickOne(r.rng, lastNames),
			EmergencyContactPhone: r.buildPhone(),
		}
		families = append(families, family)
		assignments[family.ID] = memberIDs
	}

	return families, assignments
}

func firstUnassigned(adults []congregation.Member, assigned map[string]bool) (congregation.Member, bool) {
	for _, adult := range adults {
		if !assigned[adult.ID] {
			return adult, true
		}
	}
	return congregation.Member{}, false
}

func (r *run) buildAddress() string {
	return fmt.Sprintf("%d %s, %s", intRange(r.rng, 100, 9999), pickOne(r.rng, streetNames), pickOne(r.rng, cityNames))
}
