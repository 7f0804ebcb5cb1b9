package demodata

import (
	"math/rand"
	"time"

	"church-app-go/internal/domain/congregation"

	"github.com/shopspring/decimal"
)

// run holds the inputs shared by every synthesis stage of one generation pass.
type run struct {
	organizationID string
	now            time.Time
	rng            *rand.Rand
}

type batchTotal struct {
	Total decimal.Decimal
	Count int
}

// snapshot is the in-memory result of all synthesis stages, ordered the way it
// will be persisted. Cross-entity bookkeeping lives in explicit index maps.
type snapshot struct {
	members  []congregation.Member
	families []congregation.Family
	// familyMembers maps family id to the ids of every member placed in it,
	// primary contact first. Applied as a second pass of per-member updates
	// after both members and families are persisted.
	familyMembers map[string][]string
	events        []congregation.Event
	attendance    []congregation.Attendance
	batches       []congregation.DonationBatch
	donations     []congregation.Donation
	// batchTotals maps batch id to the recomputed aggregate over its donations.
	batchTotals  map[string]batchTotal
	groups       []congregation.Group
	groupMembers []congregation.GroupMember
	tasks        []congregation.Task
	guardians    []congregation.ChildGuardian
	checkIns     []congregation.ChildCheckIn
}

func (r *run) synthesize(memberCount, weeks int) *snapshot {
	snap := &snapshot{
		familyMembers: make(map[string][]string),
		batchTotals:   make(map[string]batchTotal),
	}

	snap.members = r.buildMembers(memberCount)
	snap.events = r.buildEvents(weeks)
	snap.attendance = r.buildAttendance(snap.events, snap.members)
	snap.batches, snap.donations = r.buildDonations(weeks, snap.members)
	snap.batchTotals = recomputeBatchTotals(snap.batches, snap.donations)
	snap.groups, snap.groupMembers = r.buildGroups(snap.members)
	snap.families, snap.familyMembers = r.buildFamilies(snap.members)
	snap.tasks = r.buildTasks(snap.members)
	snap.guardians = r.buildGuardians(snap.members)
	snap.checkIns = r.buildCheckIns(snap.events, snap.members, snap.guardians)

	return snap
}

// weekStart returns the Sunday beginning the week offset weeks back from the
// current week, at midnight local time. Offset 0 is the current week.
func (r *run) weekStart(weeksBack int) time.Time {
	day := time.Date(r.now.Year(), r.now.Month(), r.now.Day(), 0, 0, 0, 0, r.now.Location())
	sunday := day.AddDate(0, 0, -int(day.Weekday()))
	return sunday.AddDate(0, 0, -7*weeksBack)
}
