package cipher

import (
	"fmt"

	"github.com/rawblock/cipherforge/internal/codec"
	"github.com/rawblock/cipherforge/internal/fitness"
	"github.com/rawblock/cipherforge/internal/models"
)

// SolveBase reinterprets data as a single unsigned integer in each base
// b in [2,36], emitting the decimal string, per spec §4.2. Fitness is
// score_combined on the decimal string minus a tie-break favoring lower
// bases.
func SolveBase(data []byte, _ models.Keychain) []models.HopResult {
	var hops []models.HopResult

	for b := 2; b <= 36; b++ {
		decimal := codec.DecodeBase(data, b)
		if decimal == nil {
			continue
		}
		fit := fitness.ScoreCombined(decimal, false) - 0.01*float64(b)/36.0
		hops = append(hops, models.HopResult{
			Data:         decimal,
			MethodSuffix: fmt.Sprintf("BASE%d", b),
			Fitness:      fit,
		})
	}
	return hops
}
