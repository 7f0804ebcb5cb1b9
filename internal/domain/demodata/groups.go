package demodata

import (
	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
)

// buildGroups instantiates the fixed ministry group catalog. Leaders rotate
// round-robin through the active adults; membership is drawn per group from a
// fresh shuffle of the active members, so one member may serve in many groups.
func (r *run) buildGroups(members []congregation.Member) ([]congregation.Group, []congregation.GroupMember) {
	var leaders []congregation.Member
	var active []congregation.Member
	for _, member := range members {
		if member.Status != congregation.StatusActive {
			continue
		}
		active = append(active, member)
		if member.MemberType == congregation.MemberTypeAdult {
			leaders = append(leaders, member)
		}
	}

	groups := make([]congregation.Group, 0, len(groupCatalog))
	var groupMembers []congregation.GroupMember

	for i, tmpl := range groupCatalog {
		group := congregation.Group{
			ID:             uuid.NewString(),
			OrganizationID: r.organizationID,
			Name:           tmpl.Name,
			Description:    tmpl.Description,
		}
		if len(leaders) > 0 {
			leaderID := leaders[i%len(leaders)].ID
			group.LeaderID = &leaderID
		}
		groups = append(groups, group)

		target := tmpl.TargetSize
		if target <= 0 {
			target = defaultGroupSize
		}
		if target > len(active) {
			target = len(active)
		}

		for _, member := range shuffled(r.rng, active)[:target] {
			groupMembers = append(groupMembers, congregation.GroupMember{
				ID:             uuid.NewString(),
				OrganizationID: r.organizationID,
				GroupID:        group.ID,
				MemberID:       member.ID,
			})
		}
	}

	return groups, groupMembers
}
