package demodata

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"church-app-go/pkg/logger"
)

const (
	DefaultMemberCount     = 50
	DefaultWeeksToGenerate = 26
)

type Params struct {
	OrganizationID  string
	MemberCount     int
	WeeksToGenerate int
}

// Stats counts the records produced per category by one generation run.
type Stats struct {
	Members          int `json:"members"`
	Events           int `json:"events"`
	Attendance       int `json:"attendance"`
	Donations        int `json:"donations"`
	Batches          int `json:"batches"`
	Groups           int `json:"groups"`
	GroupMembers     int `json:"groupMembers"`
	Families         int `json:"families"`
	Tasks            int `json:"tasks"`
	Guardians        int `json:"guardians"`
	ChildrenCheckIns int `json:"childrenCheckIns"`
}

// Service synthesizes a self-consistent congregation snapshot in memory and
// persists it through the repository in dependency order. One call is one
// run; record ids are freshly generated each time (events excepted, whose ids
// are derived from slug and start time), so reruns add rather than overwrite.
type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
	seed func() *rand.Rand
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
		seed: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Generate runs every synthesis stage, then writes the snapshot out in an
// order satisfying foreign-key dependencies. The first failing stage aborts
// the run with a stage-tagged error; earlier writes are not rolled back.
func (s *Service) Generate(ctx context.Context, params Params) (*Stats, error) {
	params.OrganizationID = strings.TrimSpace(params.OrganizationID)
	if params.OrganizationID == "" {
		return nil, ErrOrganizationRequired
	}
	if params.MemberCount < 0 {
		params.MemberCount = 0
	}
	if params.WeeksToGenerate <= 0 {
		params.WeeksToGenerate = DefaultWeeksToGenerate
	}

	r := &run{
		organizationID: params.OrganizationID,
		now:            s.now(),
		rng:            s.seed(),
	}

	s.log.Info("demodata: generating snapshot",
		"organization_id", params.OrganizationID,
		"member_count", params.MemberCount,
		"weeks", params.WeeksToGenerate)

	snap := r.synthesize(params.MemberCount, params.WeeksToGenerate)

	if err := s.persist(ctx, snap); err != nil {
		return nil, err
	}

	stats := snap.stats()
	s.log.Info("demodata: snapshot persisted",
		"organization_id", params.OrganizationID,
		"members", stats.Members,
		"events", stats.Events,
		"donations", stats.Donations)

	return &stats, nil
}

// Purge deletes every generated record for the organization in reverse
// dependency order.
func (s *Service) Purge(ctx context.Context, organizationID string) error {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return ErrOrganizationRequired
	}

	s.log.Info("demodata: purging organization", "organization_id", organizationID)
	return s.repo.PurgeOrganization(ctx, organizationID)
}

type stage struct {
	name string
	fn   func(context.Context) error
}

func (s *Service) persist(ctx context.Context, snap *snapshot) error {
	stages := []stage{
		{"members insert", func(ctx context.Context) error {
			return s.repo.UpsertMembers(ctx, snap.members)
		}},
		{"families insert", func(ctx context.Context) error {
			return s.repo.UpsertFamilies(ctx, snap.families)
		}},
		{"family link update", func(ctx context.Context) error {
			for _, family := range snap.families {
				for _, memberID := range snap.familyMembers[family.ID] {
					if err := s.repo.AssignMemberFamily(ctx, memberID, family.ID); err != nil {
						return err
					}
				}
			}
			return nil
		}},
		{"events insert", func(ctx context.Context) error {
			return s.repo.UpsertEvents(ctx, snap.events)
		}},
		{"attendance insert", func(ctx context.Context) error {
			return s.repo.UpsertAttendance(ctx, snap.attendance)
		}},
		{"batches insert", func(ctx context.Context) error {
			return s.repo.UpsertDonationBatches(ctx, snap.batches)
		}},
		{"donations insert", func(ctx context.Context) error {
			return s.repo.UpsertDonations(ctx, snap.donations)
		}},
		{"batch update", func(ctx context.Context) error {
			for _, batch := range snap.batches {
				agg := snap.batchTotals[batch.ID]
				if err := s.repo.UpdateBatchTotals(ctx, batch.ID, agg.Total, agg.Count); err != nil {
					return err
				}
			}
			return nil
		}},
		{"groups insert", func(ctx context.Context) error {
			return s.repo.UpsertGroups(ctx, snap.groups)
		}},
		{"group members insert", func(ctx context.Context) error {
			return s.repo.UpsertGroupMembers(ctx, snap.groupMembers)
		}},
		{"tasks insert", func(ctx context.Context) error {
			return s.repo.UpsertTasks(ctx, snap.tasks)
		}},
		{"guardians insert", func(ctx context.Context) error {
			return s.repo.UpsertGuardians(ctx, snap.guardians)
		}},
		{"check-ins insert", func(ctx context.Context) error {
			return s.repo.UpsertCheckIns(ctx, snap.checkIns)
		}},
	}

	for _, st := range stages {
		if err := st.fn(ctx); err != nil {
			s.log.InternalError("demodata: persistence stage failed", err, "stage", st.name)
			return &StageError{Stage: st.name, Err: err}
		}
	}

	return nil
}

func (snap *snapshot) stats() Stats {
	return Stats{
		Members:          len(snap.members),
		Events:           len(snap.events),
		Attendance:       len(snap.attendance),
		Donations:        len(snap.donations),
		Batches:          len(snap.batches),
		Groups:           len(snap.groups),
		GroupMembers:     len(snap.groupMembers),
		Families:         len(snap.families),
		Tasks:            len(snap.tasks),
		Guardians:        len(snap.guardians),
		ChildrenCheckIns: len(snap.checkIns),
	}
}
