package congregation

import (
	"context"
	"time"

	congregationdomain "church-app-go/internal/domain/congregation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMembers(ctx context.Context, organizationID string, limit, offset int) ([]congregationdomain.Member, error) {
	var members []congregationdomain.Member
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("lastname asc, firstname asc").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) CountMembers(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&congregationdomain.Member{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ListEvents(ctx context.Context, organizationID string, from, to time.Time) ([]congregationdomain.Event, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID)
	if !from.IsZero() {
		query = query.Where("start_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("start_date < ?", to)
	}

	var events []congregationdomain.Event
	if err := query.Order("start_date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) Summary(ctx context.Context, organizationID string) (*congregationdomain.Summary, error) {
	summary := &congregationdomain.Summary{
		DonationTotal:   decimal.Zero,
		AverageDonation: decimal.Zero,
	}

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&congregationdomain.Member{}, &summary.Members},
		{&congregationdomain.Event{}, &summary.Events},
		{&congregationdomain.Attendance{}, &summary.Attendance},
		{&congregationdomain.Donation{}, &summary.Donations},
		{&congregationdomain.DonationBatch{}, &summary.Batches},
		{&congregationdomain.Group{}, &summary.Groups},
		{&congregationdomain.GroupMember{}, &summary.GroupMembers},
		{&congregationdomain.Family{}, &summary.Families},
		{&congregationdomain.Task{}, &summary.Tasks},
		{&congregationdomain.ChildGuardian{}, &summary.Guardians},
		{&congregationdomain.ChildCheckIn{}, &summary.ChildrenCheckIns},
	}

	for _, c := range counts {
		if err := r.db.WithContext(ctx).
			Model(c.model).
			Where("organization_id = ?", organizationID).
			Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&congregationdomain.Donation{}).
		Where("organization_id = ?", organizationID).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	if total.Valid {
		summary.DonationTotal = total.Decimal
	}

	return summary, nil
}
