package demodata

import (
	"fmt"
	"strings"

	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
)

const adultShare = 0.7

// buildMembers synthesizes memberCount members, adults first, then children.
// Children carry a birth date placing them between 0 and 17 years old and no
// phone number.
func (r *run) buildMembers(memberCount int) []congregation.Member {
	if memberCount <= 0 {
		return nil
	}

	adultCount := int(float64(memberCount) * adultShare)
	members := make([]congregation.Member, 0, memberCount)

	for i := 0; i < adultCount; i++ {
		members = append(members, r.buildAdult())
	}
	for i := adultCount; i < memberCount; i++ {
		members = append(members, r.buildChild())
	}

	return members
}

func (r *run) buildAdult() congregation.Member {
	gender := r.pickGender()
	firstname := pickOne(r.rng, adultMaleNames)
	if gender == "female" {
		firstname = pickOne(r.rng, adultFemaleNames)
	}
	lastname := pickOne(r.rng, lastNames)

	member := r.baseMember(firstname, lastname, gender)
	member.MemberType = congregation.MemberTypeAdult
	phone := r.buildPhone()
	member.Phone = &phone
	return member
}

func (r *run) buildChild() congregation.Member {
	gender := r.pickGender()
	firstname := pickOne(r.rng, childMaleNames)
	if gender == "female" {
		firstname = pickOne(r.rng, childFemaleNames)
	}
	lastname := pickOne(r.rng, lastNames)

	member := r.baseMember(firstname, lastname, gender)
	member.MemberType = congregation.MemberTypeChild
	birth := r.now.AddDate(-r.rng.Intn(18), 0, -r.rng.Intn(365))
	member.BirthDate = &birth
	return member
}

func (r *run) baseMember(firstname, lastname, gender string) congregation.Member {
	id := uuid.NewString()
	return congregation.Member{
		ID:                  id,
		OrganizationID:      r.organizationID,
		Firstname:           firstname,
		Lastname:            lastname,
		Email:               r.buildEmail(firstname, lastname),
		Status:              pickWeighted(r.rng, statusChoices),
		Gender:              gender,
		AttendanceFrequency: pickWeighted(r.rng, frequencyChoices),
		JoinDate:            r.now.AddDate(0, 0, -r.rng.Intn(5*365)),
		ImageURL:            fmt.Sprintf(pickOne(r.rng, avatarURLTemplates), id),
	}
}

func (r *run) pickGender() string {
	if happens(r.rng, 0.5) {
		return "female"
	}
	return "male"
}

func (r *run) buildEmail(firstname, lastname string) string {
	return strings.ToLower(fmt.Sprintf("%s.%s%d@example.com", firstname, lastname, r.rng.Intn(1000)))
}

func (r *run) buildPhone() string {
	return fmt.Sprintf("(555) %03d-%04d", r.rng.Intn(1000), r.rng.Intn(10000))
}
