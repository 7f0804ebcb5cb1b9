package congregation

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Summary is the dashboard view over one organization's records.
type Summary struct {
	Members          int64
	Events           int64
	Attendance       int64
	Donations        int64
	Batches          int64
	Groups           int64
	GroupMembers     int64
	Families         int64
	Tasks            int64
	Guardians        int64
	ChildrenCheckIns int64
	DonationTotal    decimal.Decimal
	AverageDonation  decimal.Decimal
}

type MemberPage struct {
	Members []Member
	Total   int64
	Limit   int
	Offset  int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMembers(ctx context.Context, organizationID string, limit, offset int) (*MemberPage, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return nil, ErrOrganizationRequired
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	members, err := s.repo.ListMembers(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountMembers(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	return &MemberPage{
		Members: members,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *Service) ListEvents(ctx context.Context, organizationID string, from, to time.Time) ([]Event, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return nil, ErrOrganizationRequired
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	return s.repo.ListEvents(ctx, organizationID, from, to)
}

func (s *Service) Summary(ctx context.Context, organizationID string) (*Summary, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return nil, ErrOrganizationRequired
	}

	summary, err := s.repo.Summary(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if summary.Donations > 0 {
		summary.AverageDonation = summary.DonationTotal.
			Div(decimal.NewFromInt(summary.Donations)).
			Round(2)
	}

	return summary, nil
}
