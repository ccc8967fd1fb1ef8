// Package registry holds the static, immutable solver table (spec §4.4): a
// fixed list of SolverDescriptors in expansion order, each wrapping either a
// codec.Decode* function (scored with fitness.ScoreCombined) or a
// internal/cipher brute-forcer (which scores its own hops).
//
// Grounded on internal/heuristics/risk_roles.go's small static
// role->severity/weight lookup table as this codebase's idiom for an
// immutable registry initialized once and read thereafter.
package registry

import (
	"strings"

	"github.com/rawblock/cipherforge/internal/cipher"
	"github.com/rawblock/cipherforge/internal/codec"
	"github.com/rawblock/cipherforge/internal/fitness"
	"github.com/rawblock/cipherforge/internal/models"
)

func decoderSolver(label string, decode func([]byte) []byte) models.SolverFunc {
	return func(data []byte, _ models.Keychain) []models.HopResult {
		out := decode(data)
		if out == nil {
			return nil
		}
		return []models.HopResult{{
			Data:         out,
			MethodSuffix: label,
			Fitness:      fitness.ScoreCombined(out, false),
		}}
	}
}

// solvers is the full registry, in spec §4.4's declared expansion order.
var solvers = []models.SolverDescriptor{
	{Label: "HEX", Popularity: 0.8, Fn: decoderSolver("HEX", codec.DecodeHex)},
	{Label: "BASE64", Popularity: 0.9, Fn: decoderSolver("BASE64", codec.DecodeBase64)},
	{Label: "BINARY", Popularity: 0.5, Fn: decoderSolver("BINARY", codec.DecodeBinary)},
	{Label: "OCTAL", Popularity: 0.3, Fn: decoderSolver("OCTAL", codec.DecodeOctal)},
	{Label: "AFFINE", Popularity: 0.4, PreventConsecutive: true, Fn: cipher.SolveAffine},
	{Label: "VIGENERE", Popularity: 0.6, Fn: cipher.SolveVigenere},
	{Label: "BASE", Popularity: 0.2, Fn: cipher.SolveBase},
	{Label: "RAILFENCE", Popularity: 0.3, Fn: cipher.SolveRailfence},
	{Label: "MORSE", Popularity: 0.4, Fn: cipher.SolveMorse},
}

// commonLabels is the "common" algorithms preset: the solvers most likely to
// appear in a layered challenge, skipping the expensive multi-base sweep.
var commonLabels = map[string]bool{
	"HEX": true, "BASE64": true, "BINARY": true, "AFFINE": true,
	"VIGENERE": true, "RAILFENCE": true, "MORSE": true,
}

// GetSolvers resolves a csv list (or the "common" preset) of solver labels
// against the static registry, preserving the registry's declared order.
func GetSolvers(namesCSV string) []models.SolverDescriptor {
	namesCSV = strings.TrimSpace(namesCSV)
	if namesCSV == "" {
		return nil
	}

	if strings.EqualFold(namesCSV, "common") {
		var out []models.SolverDescriptor
		for _, s := range solvers {
			if commonLabels[s.Label] {
				out = append(out, s)
			}
		}
		return out
	}

	wanted := make(map[string]bool)
	for _, n := range strings.Split(namesCSV, ",") {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n != "" {
			wanted[n] = true
		}
	}

	var out []models.SolverDescriptor
	for _, s := range solvers {
		if wanted[s.Label] {
			out = append(out, s)
		}
	}
	return out
}

// All returns every registered solver, in declaration order.
func All() []models.SolverDescriptor {
	return append([]models.SolverDescriptor(nil), solvers...)
}
