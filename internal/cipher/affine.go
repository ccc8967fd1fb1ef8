// Package cipher implements spec §4.2's classical-cipher brute-forcers:
// Affine, Vigenère, Rail-fence, Morse, and multi-base reinterpretation.
// Affine, Vigenère and Rail-fence score each hop with a fixed base score and
// a tiny tie-break penalty rather than score_combined. Morse scores its hop
// with the fraction of letter codes that translate, and the multi-base sweep
// scores each decimal string with score_combined minus a tie-break.
//
// Grounded on internal/heuristics/dp_solver.go and cpsat_solver.go's bounded
// brute-force enumeration shape: iterate a small parameter space, bail out
// on invalid parameters, attach a deterministic tie-break term to the
// returned score.
package cipher

import (
	"fmt"

	"github.com/rawblock/cipherforge/internal/models"
)

const affineBaseFitness = 0.75

// modInverse returns the modular inverse of a mod m, or false if none
// exists (a and m not coprime).
func modInverse(a, m int) (int, bool) {
	a = ((a % m) + m) % m
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, true
		}
	}
	return 0, false
}

// SolveAffine brute-forces all 25*26 (a,b) key pairs, skipping a values
// with no modular inverse mod 26, per spec §4.2.
func SolveAffine(data []byte, _ models.Keychain) []models.HopResult {
	var hops []models.HopResult

	for a := 1; a <= 25; a++ {
		aInv, ok := modInverse(a, 26)
		if !ok {
			continue
		}
		for b := 0; b <= 25; b++ {
			out := affineDecrypt(data, aInv, b)
			fit := affineBaseFitness - 0.01*float64(a*26+b)/676.0
			hops = append(hops, models.HopResult{
				Data:         out,
				MethodSuffix: fmt.Sprintf("AFFINE a=%d b=%d", a, b),
				Fitness:      fit,
			})
		}
	}
	return hops
}

func affineDecrypt(data []byte, aInv, b int) []byte {
	out := make([]byte, len(data))
	for i, c := range data {
		switch {
		case c >= 'A' && c <= 'Z':
			p := mod26(aInv * (int(c-'A') - b))
			out[i] = byte('A' + p)
		case c >= 'a' && c <= 'z':
			p := mod26(aInv * (int(c-'a') - b))
			out[i] = byte('a' + p)
		default:
			out[i] = c
		}
	}
	return out
}

func mod26(n int) int {
	n %= 26
	if n < 0 {
		n += 26
	}
	return n
}
