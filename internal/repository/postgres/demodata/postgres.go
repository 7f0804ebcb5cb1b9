package demodata

import (
	"context"

	"church-app-go/internal/domain/congregation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 200

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// upsert writes rows in batches, resolving primary-key conflicts by updating
// the existing record.
func (r *PostgresRepository) upsert(ctx context.Context, rows interface{}, count int) error {
	if count == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(rows, upsertBatchSize).Error
}

func (r *PostgresRepository) UpsertMembers(ctx context.Context, members []congregation.Member) error {
	return r.upsert(ctx, members, len(members))
}

func (r *PostgresRepository) UpsertFamilies(ctx context.Context, families []congregation.Family) error {
	return r.upsert(ctx, families, len(families))
}

func (r *PostgresRepository) AssignMemberFamily(ctx context.Context, memberID, familyID string) error {
	return r.db.WithContext(ctx).
		Model(&congregation.Member{}).
		Where("id = ?", memberID).
		Update("family_id", familyID).Error
}

func (r *PostgresRepository) UpsertEvents(ctx context.Context, events []congregation.Event) error {
	return r.upsert(ctx, events, len(events))
}

func (r *PostgresRepository) UpsertAttendance(ctx context.Context, attendance []congregation.Attendance) error {
	return r.upsert(ctx, attendance, len(attendance))
}

func (r *PostgresRepository) UpsertDonationBatches(ctx context.Context, batches []congregation.DonationBatch) error {
	return r.upsert(ctx, batches, len(batches))
}

func (r *PostgresRepository) UpsertDonations(ctx context.Context, donations []congregation.Donation) error {
	return r.upsert(ctx, donations, len(donations))
}

func (r *PostgresRepository) UpdateBatchTotals(ctx context.Context, batchID string, total decimal.Decimal, count int) error {
	return r.db.WithContext(ctx).
		Model(&congregation.DonationBatch{}).
		Where("id = ?", batchID).
		Updates(map[string]interface{}{
			"total_amount":   total,
			"donation_count": count,
		}).Error
}

func (r *PostgresRepository) UpsertGroups(ctx context.Context, groups []congregation.Group) error {
	return r.upsert(ctx, groups, len(groups))
}

func (r *PostgresRepository) UpsertGroupMembers(ctx context.Context, groupMembers []congregation.GroupMember) error {
	return r.upsert(ctx, groupMembers, len(groupMembers))
}

func (r *PostgresRepository) UpsertTasks(ctx context.Context, tasks []congregation.Task) error {
	return r.upsert(ctx, tasks, len(tasks))
}

func (r *PostgresRepository) UpsertGuardians(ctx context.Context, guardians []congregation.ChildGuardian) error {
	return r.upsert(ctx, guardians, len(guardians))
}

func (r *PostgresRepository) UpsertCheckIns(ctx context.Context, checkIns []congregation.ChildCheckIn) error {
	return r.upsert(ctx, checkIns, len(checkIns))
}

// PurgeOrganization deletes the organization's records in reverse dependency
// order, mirroring the write pipeline.
func (r *PostgresRepository) PurgeOrganization(ctx context.Context, organizationID string) error {
	targets := []interface{}{
		&congregation.ChildCheckIn{},
		&congregation.ChildGuardian{},
		&congregation.Task{},
		&congregation.GroupMember{},
		&congregation.Group{},
		&congregation.Donation{},
		&congregation.DonationBatch{},
		&congregation.Attendance{},
		&congregation.Event{},
		&congregation.Member{},
		&congregation.Family{},
	}

	for _, target := range targets {
		if err := r.db.WithContext(ctx).
			Where("organization_id = ?", organizationID).
			Delete(target).Error; err != nil {
			return err
		}
	}

	return nil
}
