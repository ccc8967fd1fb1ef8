package fitness

import (
	"log"

	"github.com/coregx/ahocorasick"
)

// commonBigrams is the fixed list of ~140 common English bigrams used by
// score_english_bigram in the original source, carried verbatim.
var commonBigrams = []string{
	"TH", "HE", "IN", "ER", "AN", "RE", "ON", "AT", "EN", "ND",
	"TI", "ES", "OR", "TE", "OF", "ED", "IS", "IT", "AL", "AR",
	"ST", "TO", "NT", "NG", "SE", "HA", "AS", "OU", "IO", "LE",
	"VE", "CO", "ME", "DE", "HI", "RI", "RO", "IC", "NE", "EA",
	"RA", "CE", "LI", "CH", "LL", "BE", "MA", "SI", "OM", "UR",
	"CA", "EL", "TA", "LA", "NS", "DI", "FO", "HO", "PE", "EC",
	"PR", "NO", "CT", "US", "OT", "IL", "TR", "NC", "AC", "RS",
	"LO", "AI", "LY", "IE", "GE", "UT", "SO", "RT", "WI", "UN",
	"EM", "WH", "AD", "OL", "PO", "WE", "UL", "ID", "EE", "EY",
	"SS", "OO", "FF", "OW", "LS", "EI", "RN", "AB", "PL", "TT",
	"EW", "IF", "EX", "SP", "UA", "MY", "IV", "DA", "CK", "FT",
	"GH", "KE", "RM", "SW", "SU", "EP", "CI", "BL", "RY", "EF",
	"OP", "SH", "UP", "IP", "IM", "GR", "TY", "NK", "OY", "AY",
	"PT", "DR", "AM", "OS", "AP", "AG", "OD", "AV", "IB", "KN",
}

const (
	bigramCutoff = 0.28
	bigramRange  = 0.55 - 0.28
)

// bigramAutomaton is built once at package init from commonBigrams, the same
// "build once, query per candidate" shape coregx-coregex uses its
// Aho-Corasick automaton for in meta/compile.go.
var bigramAutomaton *ahocorasick.Automaton

func init() {
	builder := ahocorasick.NewBuilder()
	for _, bg := range commonBigrams {
		builder.AddPattern([]byte(bg))
	}
	auto, err := builder.Build()
	if err != nil {
		log.Fatalf("fitness: failed to build bigram automaton: %v", err)
	}
	bigramAutomaton = auto
}

// ScoreBigramDensity implements spec §4.1's English bigram density heuristic:
// density of matched 2-grams (uppercased) against the common-bigram table,
// mapped from [0.28, 0.55] onto [0, 1] and clamped.
func ScoreBigramDensity(data []byte) float64 {
	if len(data) < 2 {
		return 0
	}

	upper := make([]byte, len(data))
	for i, b := range data {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		upper[i] = b
	}

	totalBigrams := len(upper) - 1
	matches := 0
	for i := 0; i < totalBigrams; i++ {
		if bigramAutomaton.IsMatch(upper[i : i+2]) {
			matches++
		}
	}

	density := float64(matches) / float64(totalBigrams)
	if density < bigramCutoff {
		return 0
	}
	score := (density - bigramCutoff) / bigramRange
	if score > 1 {
		score = 1
	}
	return score
}
