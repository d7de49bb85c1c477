package bank

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Rana718/fakebank/internal/synth"
)

// Transfer amounts in cents.
const (
	MinAmountCents = 1_000
	MaxAmountCents = 500_000
)

var (
	MinAmount = decimal.New(MinAmountCents, -2)
	MaxAmount = decimal.New(MaxAmountCents, -2)

	transferReasons = synth.Uniform([]TransferReason{ReasonPayment, ReasonGift, ReasonTransfer, ReasonRefund, ReasonOther})
)

// GenerateTransfers draws 2 to 20 outgoing transfers per customer, each to
// a different customer.
func GenerateTransfers(ctx context.Context, env *Env, customers []Customer) ([]Transfer, error) {
	n := len(customers)
	if n < 2 {
		return nil, fmt.Errorf("%w: transfers need at least 2 customers, got %d", synth.ErrPrecondition, n)
	}
	floor := synth.YearsBefore(env.today, 5)

	var out []Transfer
	for i, sender := range customers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		k := env.src.IntBetween(2, 20)
		for range k {
			j := env.src.IntN(n - 1)
			if j >= i {
				j++
			}
			cents := env.src.IntBetween(MinAmountCents, MaxAmountCents)
			ts, err := synth.TimeBetween(env.src, floor, env.end)
			if err != nil {
				return nil, fmt.Errorf("transfers: timestamp: %w", err)
			}
			out = append(out, Transfer{
				SenderID:   sender.ID,
				ReceiverID: customers[j].ID,
				Amount:     decimal.New(int64(cents), -2),
				Timestamp:  ts,
				Reason:     transferReasons.Draw(env.src),
			})
		}
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}
