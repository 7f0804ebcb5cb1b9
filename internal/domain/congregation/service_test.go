package congregation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	members []Member
	events  []Event
	summary *Summary

	lastLimit  int
	lastOffset int
}

func (r *fakeRepo) ListMembers(_ context.Context, _ string, limit, offset int) ([]Member, error) {
	r.lastLimit = limit
	r.lastOffset = offset
	return r.members, nil
}

func (r *fakeRepo) CountMembers(_ context.Context, _ string) (int64, error) {
	return int64(len(r.members)), nil
}

func (r *fakeRepo) ListEvents(_ context.Context, _ string, _, _ time.Time) ([]Event, error) {
	return r.events, nil
}

func (r *fakeRepo) Summary(_ context.Context, _ string) (*Summary, error) {
	out := *r.summary
	return &out, nil
}

func TestListMembersRequiresOrganization(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.ListMembers(context.Background(), "   ", 10, 0)
	if !errors.Is(err, ErrOrganizationRequired) {
		t.Fatalf("expected ErrOrganizationRequired, got %v", err)
	}
}

func TestListMembersClampsPaging(t *testing.T) {
	repo := &fakeRepo{members: []Member{{ID: "m1"}, {ID: "m2"}}}
	svc := NewService(repo)

	page, err := svc.ListMembers(context.Background(), "org-1", 0, -5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastLimit != defaultPageSize {
		t.Fatalf("expected default limit %d, got %d", defaultPageSize, repo.lastLimit)
	}
	if repo.lastOffset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", repo.lastOffset)
	}
	if page.Total != 2 {
		t.Fatalf("expected total 2, got %d", page.Total)
	}

	if _, err := svc.ListMembers(context.Background(), "org-1", 10000, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastLimit != maxPageSize {
		t.Fatalf("expected limit capped at %d, got %d", maxPageSize, repo.lastLimit)
	}
}

func TestListEventsRejectsInvertedRange(t *testing.T) {
	svc := NewService(&fakeRepo{})

	from := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	_, err := svc.ListEvents(context.Background(), "org-1", from, to)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestSummaryComputesAverage(t *testing.T) {
	repo := &fakeRepo{summary: &Summary{
		Donations:     4,
		DonationTotal: decimal.NewFromInt(100),
	}}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !summary.AverageDonation.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected average 25, got %s", summary.AverageDonation)
	}
}

func TestSummaryZeroDonations(t *testing.T) {
	repo := &fakeRepo{summary: &Summary{DonationTotal: decimal.Zero}}
	svc := NewService(repo)

	summary, err := svc.Summary(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !summary.AverageDonation.Equal(decimal.Zero) {
		t.Fatalf("expected zero average, got %s", summary.AverageDonation)
	}
}
