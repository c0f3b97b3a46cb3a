// Package policy holds the pure bonus-currency rules. Functions here are
// stateless: they take a counter snapshot plus a clock reading and return
// the next counter values. Serialization of concurrent updates is the
// runtime's job, not this package's.
package policy

import (
	"time"

	"reward-lab/domain"
)

const (
	// BonusUnitCost is the engagement spent per bonus-currency unit.
	BonusUnitCost int64 = 100_000
	// MintWindow is the rolling period a free-tier user has to cross
	// the threshold before window progress is forfeited.
	MintWindow = 24 * time.Hour
)

// Accumulator is the subset of session counters the mint rules read and write.
type Accumulator struct {
	TotalEngagement int64
	BonusEarned     int64
	// LastMintedAt is nil while no mint window is open.
	LastMintedAt *time.Time
	// Baseline is the engagement total captured at the last mint or
	// window reset. Window progress is TotalEngagement - Baseline.
	Baseline int64
}

// Evaluation is the outcome of one mint evaluation tick.
type Evaluation struct {
	Accumulator
	// Minted is true when this tick increased BonusEarned.
	Minted bool
}

// Evaluate applies the mint rules to an accumulator at a given instant.
//
// Premium and developer tiers bypass the window entirely: the bonus is
// recomputed from the all-time total and no window timestamp is kept.
//
// Free tier runs the rolling-window threshold rules:
//   - a lapsed window resets the baseline without granting anything and
//     leaves the window closed until the next crossing;
//   - a crossing mints exactly one unit, whatever the overshoot. The
//     baseline resets to the current total, so surplus above one
//     threshold is forfeited. That matches the observed economics and
//     must not be "fixed" here without a product decision.
func Evaluate(acc Accumulator, tier domain.TierContext, now time.Time) Evaluation {
	if tier.Bypass() {
		bonus := acc.TotalEngagement / BonusUnitCost
		return Evaluation{
			Accumulator: Accumulator{
				TotalEngagement: acc.TotalEngagement,
				BonusEarned:     bonus,
				LastMintedAt:    nil,
				Baseline:        acc.TotalEngagement,
			},
			Minted: bonus > acc.BonusEarned,
		}
	}

	if acc.LastMintedAt != nil && now.Sub(*acc.LastMintedAt) > MintWindow {
		// Expired, start over. No unit is granted on the reset tick.
		acc.Baseline = acc.TotalEngagement
		acc.LastMintedAt = nil
		return Evaluation{Accumulator: acc}
	}

	if acc.TotalEngagement-acc.Baseline >= BonusUnitCost {
		acc.BonusEarned++
		mintedAt := now
		acc.LastMintedAt = &mintedAt
		acc.Baseline = acc.TotalEngagement
		return Evaluation{Accumulator: acc, Minted: true}
	}

	return Evaluation{Accumulator: acc}
}

// Progress is the answer to "how close is the next bonus unit".
type Progress struct {
	Earned   int64
	Fraction float64
	// TimeRemaining is nil for bypass tiers, which have no window.
	TimeRemaining *time.Duration
}

// ComputeProgress reports mint progress without mutating anything.
// A lapsed window is reported as zero progress with a full window
// remaining, mirroring what the next Evaluate tick would establish.
// A freshly opened window with no engagement recorded since the mint
// reports a full bar: the unit was just earned and the display should
// say so until new progress accrues.
func ComputeProgress(acc Accumulator, tier domain.TierContext, now time.Time) Progress {
	if tier.Bypass() {
		return Progress{
			Earned:   acc.TotalEngagement / BonusUnitCost,
			Fraction: 1.0,
		}
	}

	sinceMint := acc.TotalEngagement - acc.Baseline
	remaining := MintWindow
	justMinted := false
	if acc.LastMintedAt != nil {
		elapsed := now.Sub(*acc.LastMintedAt)
		if elapsed > MintWindow {
			sinceMint = 0
		} else {
			remaining = MintWindow - elapsed
			justMinted = sinceMint == 0
		}
	}

	fraction := float64(sinceMint) / float64(BonusUnitCost)
	if justMinted || fraction > 1.0 {
		fraction = 1.0
	}

	return Progress{
		Earned:        acc.BonusEarned,
		Fraction:      fraction,
		TimeRemaining: &remaining,
	}
}
