package bank

import (
	"context"
	"fmt"

	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

const noteWords = 8

var (
	fraudTypes = synth.Uniform([]FraudType{
		FraudPhishing, FraudIdentityTheft, FraudSuspiciousTransactions,
		FraudCard, FraudMoneyLaundering, FraudUnauthorizedAccess,
	})
	fraudStatuses = synth.Uniform([]FraudStatus{FraudUnderInvestigation, FraudBlocked})
)

// FraudHoldCount is max(1, ceil(1% of n)), or 0 when there are no customers.
func FraudHoldCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 99) / 100
}

// GenerateFraudHolds flags about 1% of customers, each at most once.
func GenerateFraudHolds(ctx context.Context, env *Env, customers []Customer) ([]FraudHold, error) {
	k := FraudHoldCount(len(customers))
	if k == 0 {
		return nil, nil
	}
	floor := synth.YearsBefore(env.today, 3)
	notes := env.locales.For(locale.Domestic)

	out := make([]FraudHold, 0, k)
	for _, i := range env.src.Sample(len(customers), k) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h := FraudHold{
			CustomerID: customers[i].ID,
			FraudType:  fraudTypes.Draw(env.src),
			Status:     fraudStatuses.Draw(env.src),
		}
		var err error
		h.InclusionTimestamp, err = synth.TimeBetween(env.src, floor, env.end)
		if err != nil {
			return nil, fmt.Errorf("fraud_holds: inclusion: %w", err)
		}
		if h.Status == FraudBlocked {
			blocked, err := synth.TimeBetween(env.src, h.InclusionTimestamp, env.end)
			if err != nil {
				return nil, fmt.Errorf("fraud_holds: block: %w", err)
			}
			h.BlockTimestamp = &blocked
		}
		h.Note = notes.Sentence(noteWords)
		out = append(out, h)
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}
