package demodata

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"church-app-go/internal/domain/congregation"

	"github.com/shopspring/decimal"
)

func newTestRun(seed int64) *run {
	return &run{
		organizationID: "org-test",
		now:            testNow,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

func TestWeightedPickIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const draws = 20000
	active := 0
	for i := 0; i < draws; i++ {
		if pickWeighted(rng, statusChoices) == congregation.StatusActive {
			active++
		}
	}

	fraction := float64(active) / draws
	if fraction < 0.77 || fraction > 0.83 {
		t.Fatalf("active fraction %f, want ~0.8", fraction)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Sunday Service":            "sunday-service",
		"Monthly Fellowship Dinner": "monthly-fellowship-dinner",
		"Wednesday Bible Study":     "wednesday-bible-study",
		"  Odd -- Title!  ":         "odd-title",
	}
	for input, want := range cases {
		if got := slugify(input); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWeekStartIsSunday(t *testing.T) {
	r := newTestRun(1)

	for weeksBack := 0; weeksBack < 8; weeksBack++ {
		sunday := r.weekStart(weeksBack)
		if sunday.Weekday() != time.Sunday {
			t.Fatalf("weekStart(%d) = %s, not a Sunday", weeksBack, sunday)
		}
		if sunday.Hour() != 0 || sunday.Minute() != 0 {
			t.Fatalf("weekStart(%d) not at midnight: %s", weeksBack, sunday)
		}
	}

	if got := r.weekStart(0); !got.Equal(time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("current week Sunday = %s, want 2024-05-12", got)
	}
}

func TestBuildEventsCalendar(t *testing.T) {
	r := newTestRun(2)

	events := r.buildEvents(4)

	// Weeks starting Apr 21, Apr 28, May 5, May 12; only May 5 falls in the
	// first calendar week of its month, adding one fellowship dinner.
	if len(events) != 9 {
		t.Fatalf("expected 9 events, got %d", len(events))
	}

	var fellowship *congregation.Event
	sundays, wednesdays := 0, 0
	for i := range events {
		event := events[i]
		switch event.EventType {
		case congregation.EventTypeSundayService:
			sundays++
			if event.StartDate.Hour() != 10 {
				t.Fatalf("Sunday service at %d:00, want 10:00", event.StartDate.Hour())
			}
			if event.EndDate.Sub(event.StartDate) != 90*time.Minute {
				t.Fatalf("Sunday service duration %s, want 90m", event.EndDate.Sub(event.StartDate))
			}
		case congregation.EventTypeBibleStudy:
			wednesdays++
			if event.StartDate.Weekday() != time.Wednesday || event.StartDate.Hour() != 19 {
				t.Fatalf("Bible study at %s", event.StartDate)
			}
		case congregation.EventTypeFellowship:
			fellowship = &events[i]
		}
	}

	if sundays != 4 || wednesdays != 4 {
		t.Fatalf("expected 4 Sundays and 4 Wednesdays, got %d/%d", sundays, wednesdays)
	}
	if fellowship == nil {
		t.Fatalf("expected one fellowship dinner")
	}
	want := time.Date(2024, time.May, 4, 18, 0, 0, 0, time.UTC)
	if !fellowship.StartDate.Equal(want) {
		t.Fatalf("fellowship at %s, want %s", fellowship.StartDate, want)
	}
	if fellowship.EndDate.Sub(fellowship.StartDate) != 120*time.Minute {
		t.Fatalf("fellowship duration %s, want 120m", fellowship.EndDate.Sub(fellowship.StartDate))
	}
}

func TestBuildEventsDeterministicIDs(t *testing.T) {
	first := newTestRun(3).buildEvents(4)
	second := newTestRun(99).buildEvents(4)

	if len(first) != len(second) {
		t.Fatalf("event counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("event ids differ at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestBuildEventsIDsDisjointAcrossOrganizations(t *testing.T) {
	orgA := newTestRun(3)
	orgB := newTestRun(3)
	orgB.organizationID = "org-other"

	seen := make(map[string]string)
	for _, event := range orgA.buildEvents(4) {
		seen[event.ID] = event.OrganizationID
	}
	for _, event := range orgB.buildEvents(4) {
		if owner, ok := seen[event.ID]; ok {
			t.Fatalf("event id %s shared between %s and %s", event.ID, owner, event.OrganizationID)
		}
		if !strings.Contains(event.ID, event.OrganizationID) {
			t.Fatalf("event id %s does not carry organization %s", event.ID, event.OrganizationID)
		}
	}
}

func TestFirstSaturday(t *testing.T) {
	got := firstSaturday(time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC))
	if !got.Equal(time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first Saturday of May 2024 = %s", got)
	}

	got = firstSaturday(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))
	if !got.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first Saturday of June 2024 = %s", got)
	}
}

func TestBuildMembersComposition(t *testing.T) {
	r := newTestRun(4)

	members := r.buildMembers(20)
	if len(members) != 20 {
		t.Fatalf("expected 20 members, got %d", len(members))
	}

	adults, children := 0, 0
	for _, member := range members {
		switch member.MemberType {
		case congregation.MemberTypeAdult:
			adults++
			if member.Phone == nil {
				t.Fatalf("adult %s has no phone", member.ID)
			}
			if member.BirthDate != nil {
				t.Fatalf("adult %s has a birth date", member.ID)
			}
		case congregation.MemberTypeChild:
			children++
		default:
			t.Fatalf("unexpected member type %q", member.MemberType)
		}
		if member.ID == "" || member.Email == "" || member.ImageURL == "" {
			t.Fatalf("member missing identity fields: %+v", member)
		}
		if member.OrganizationID != "org-test" {
			t.Fatalf("member scoped to %q", member.OrganizationID)
		}
	}

	if adults != 14 || children != 6 {
		t.Fatalf("expected 14 adults / 6 children, got %d/%d", adults, children)
	}
}

func TestBuildGroupsClampsToPool(t *testing.T) {
	r := newTestRun(5)

	members := r.buildMembers(5)
	groups, groupMembers := r.buildGroups(members)

	if len(groups) != 10 {
		t.Fatalf("expected the full group catalog, got %d", len(groups))
	}

	active := 0
	for _, member := range members {
		if member.Status == congregation.StatusActive {
			active++
		}
	}

	perGroup := make(map[string]int)
	for _, gm := range groupMembers {
		perGroup[gm.GroupID]++
	}
	for _, group := range groups {
		if perGroup[group.ID] > active {
			t.Fatalf("group %s has %d members from a pool of %d", group.Name, perGroup[group.ID], active)
		}
	}
}

func TestBuildFamiliesRespectsMinimumSize(t *testing.T) {
	r := newTestRun(6)

	members := r.buildMembers(40)
	families, assignments := r.buildFamilies(members)

	if len(families) == 0 {
		t.Fatalf("expected families for 40 members")
	}

	for _, family := range families {
		ids := assignments[family.ID]
		if len(ids) < 2 {
			t.Fatalf("family %s has %d members", family.FamilyName, len(ids))
		}
		if ids[0] != family.PrimaryContactID {
			t.Fatalf("family %s does not list its primary contact first", family.FamilyName)
		}
	}
}

func TestBuildGuardiansCoverEveryChild(t *testing.T) {
	r := newTestRun(8)

	members := r.buildMembers(30)
	guardians := r.buildGuardians(members)

	counts := make(map[string]int)
	primaries := make(map[string]int)
	for _, guardian := range guardians {
		counts[guardian.ChildID]++
		if guardian.IsPrimary {
			primaries[guardian.ChildID]++
		}
	}

	for _, member := range members {
		if member.MemberType != congregation.MemberTypeChild {
			continue
		}
		n := counts[member.ID]
		if n < 1 || n > 2 {
			t.Fatalf("child %s has %d guardians", member.ID, n)
		}
		if primaries[member.ID] != 1 {
			t.Fatalf("child %s has %d primary guardians", member.ID, primaries[member.ID])
		}
	}
}

func TestRecomputeBatchTotals(t *testing.T) {
	batches := []congregation.DonationBatch{{ID: "b1"}, {ID: "b2"}}
	donations := []congregation.Donation{
		{ID: "d1", BatchID: "b1", Amount: decimal.NewFromInt(50)},
		{ID: "d2", BatchID: "b1", Amount: decimal.NewFromInt(25)},
		{ID: "d3", BatchID: "b2", Amount: decimal.NewFromInt(100)},
	}

	totals := recomputeBatchTotals(batches, donations)

	if !totals["b1"].Total.Equal(decimal.NewFromInt(75)) || totals["b1"].Count != 2 {
		t.Fatalf("b1 aggregate wrong: %+v", totals["b1"])
	}
	if !totals["b2"].Total.Equal(decimal.NewFromInt(100)) || totals["b2"].Count != 1 {
		t.Fatalf("b2 aggregate wrong: %+v", totals["b2"])
	}
	if totals["b1"].Total.Equal(decimal.Zero) {
		t.Fatalf("empty aggregate for funded batch")
	}
}

func TestFrequencyBucketVisitorsAreRare(t *testing.T) {
	visitor := congregation.Member{Status: congregation.StatusVisitor, AttendanceFrequency: congregation.FrequencyRegular}
	if got := frequencyBucket(visitor); got != congregation.FrequencyRare {
		t.Fatalf("visitor bucket %q, want rare", got)
	}

	active := congregation.Member{Status: congregation.StatusActive, AttendanceFrequency: congregation.FrequencyOccasional}
	if got := frequencyBucket(active); got != congregation.FrequencyOccasional {
		t.Fatalf("active bucket %q, want occasional", got)
	}
}
