package demodata

import (
	"math"

	"church-app-go/internal/domain/congregation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var donationBaseAmount = map[string]int{
	congregation.FrequencyRegular:    75,
	congregation.FrequencyOccasional: 45,
	congregation.FrequencyRare:       25,
}

const donationFallbackAmount = 15

// buildDonations creates one closed batch per week whose Sunday lies in the
// past (including the current week once its Sunday has passed), dated to
// that week's Sunday, and the donations that fund it. Each member decides
// independently per week: visitors give with probability 0.1, active members
// with 0.7.
func (r *run) buildDonations(weeks int, members []congregation.Member) ([]congregation.DonationBatch, []congregation.Donation) {
	var batches []congregation.DonationBatch
	var donations []congregation.Donation

	for i := weeks - 1; i >= 0; i-- {
		sunday := r.weekStart(i)
		if !sunday.Before(r.now) {
			continue
		}

		batch := congregation.DonationBatch{
			ID:             uuid.NewString(),
			OrganizationID: r.organizationID,
			BatchDate:      sunday,
			TotalAmount:    decimal.Zero,
			Status:         congregation.BatchStatusClosed,
		}
		batches = append(batches, batch)

		for _, member := range members {
			chance := 0.7
			if member.Status == congregation.StatusVisitor {
				chance = 0.1
			}
			if !happens(r.rng, chance) {
				continue
			}

			donations = append(donations, congregation.Donation{
				ID:             uuid.NewString(),
				OrganizationID: r.organizationID,
				DonorID:        member.ID,
				Amount:         r.donationAmount(member),
				Date:           sunday,
				BatchID:        batch.ID,
				PaymentMethod:  pickWeighted(r.rng, paymentMethodChoices),
			})
		}
	}

	return batches, donations
}

func (r *run) donationAmount(member congregation.Member) decimal.Decimal {
	base, ok := donationBaseAmount[member.AttendanceFrequency]
	if !ok {
		base = donationFallbackAmount
	}
	amount := math.Round(float64(base) * uniformRange(r.rng, 0.5, 1.5))
	return decimal.NewFromFloat(amount)
}

// recomputeBatchTotals derives each batch's total and count from the donation
// rows themselves. The aggregates are applied as a separate update stage after
// the donations are persisted, never estimated up front.
func recomputeBatchTotals(batches []congregation.DonationBatch, donations []congregation.Donation) map[string]batchTotal {
	totals := make(map[string]batchTotal, len(batches))
	for _, batch := range batches {
		totals[batch.ID] = batchTotal{Total: decimal.Zero}
	}

	for _, donation := range donations {
		agg := totals[donation.BatchID]
		agg.Total = agg.Total.Add(donation.Amount)
		agg.Count++
		totals[donation.BatchID] = agg
	}

	return totals
}
