package demodata

import (
	"context"

	"church-app-go/internal/domain/congregation"

	"github.com/shopspring/decimal"
)

// Repository is the bulk insert-or-update surface of the record store. Every
// upsert resolves conflicts on the primary key, so replaying a snapshot is
// idempotent per id.
type Repository interface {
	UpsertMembers(ctx context.Context, members []congregation.Member) error
	UpsertFamilies(ctx context.Context, families []congregation.Family) error
	AssignMemberFamily(ctx context.Context, memberID, familyID string) error
	UpsertEvents(ctx context.Context, events []congregation.Event) error
	UpsertAttendance(ctx context.Context, attendance []congregation.Attendance) error
	UpsertDonationBatches(ctx context.Context, batches []congregation.DonationBatch) error
	UpsertDonations(ctx context.Context, donations []congregation.Donation) error
	UpdateBatchTotals(ctx context.Context, batchID string, total decimal.Decimal, count int) error
	UpsertGroups(ctx context.Context, groups []congregation.Group) error
	UpsertGroupMembers(ctx context.Context, groupMembers []congregation.GroupMember) error
	UpsertTasks(ctx context.Context, tasks []congregation.Task) error
	UpsertGuardians(ctx context.Context, guardians []congregation.ChildGuardian) error
	UpsertCheckIns(ctx context.Context, checkIns []congregation.ChildCheckIn) error
	PurgeOrganization(ctx context.Context, organizationID string) error
}
