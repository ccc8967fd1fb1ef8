// Package analyzer implements the side-channel analyze pass (spec §4.4):
// a fixed, declaration-ordered set of label classifiers run once over the
// whole input, each returning a probability in [0,1] and a message.
//
// Grounded on internal/heuristics/alert_system.go and address_watchlist.go's
// label+probability classification against a static ruleset, returned as a
// small result struct per rule.
package analyzer

import (
	"github.com/rawblock/cipherforge/internal/codec"
	"github.com/rawblock/cipherforge/internal/fitness"
	"github.com/rawblock/cipherforge/internal/models"
)

func isHexString(data []byte) bool {
	if len(data) == 0 || len(data)%2 != 0 {
		return false
	}
	for _, b := range data {
		if !((b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')) {
			return false
		}
	}
	return true
}

func isBase64String(data []byte) bool {
	if len(data) == 0 || len(data)%4 != 0 {
		return false
	}
	return codec.DecodeBase64(data) != nil
}

func analyzeEnglish(data []byte) (float64, string) {
	score := fitness.ScoreEnglishDetailed(data)
	return score, "English-plaintext likelihood score"
}

func analyzeHex(data []byte) (float64, string) {
	if isHexString(data) {
		return 1.0, "input is a well-formed hexadecimal string"
	}
	return 0.0, "not hexadecimal"
}

func analyzeBase64(data []byte) (float64, string) {
	if isBase64String(data) {
		return 1.0, "input decodes as standard Base64"
	}
	return 0.0, "not Base64"
}

func analyzeSHA256(data []byte) (float64, string) {
	if len(data) == 64 && isHexString(data) {
		return 1.0, "input has the length/alphabet of a SHA-256 digest"
	}
	return 0.0, "not a SHA-256 digest"
}

func analyzeMD5(data []byte) (float64, string) {
	if len(data) == 32 && isHexString(data) {
		return 1.0, "input has the length/alphabet of an MD5 digest"
	}
	return 0.0, "not an MD5 digest"
}

// analyzers is the static registry, in spec §4.4's declaration order.
var analyzers = []models.AnalyzerDescriptor{
	{Label: "ENGLISH", Fn: analyzeEnglish},
	{Label: "HEX", Fn: analyzeHex},
	{Label: "BASE64", Fn: analyzeBase64},
	{Label: "SHA256", Fn: analyzeSHA256},
	{Label: "MD5", Fn: analyzeMD5},
}

// Analyze runs every registered analyzer once over data and returns the
// findings with non-zero probability, in declaration order. Empty input
// yields no findings.
func Analyze(data []byte) []models.Finding {
	if len(data) == 0 {
		return nil
	}

	var findings []models.Finding
	for _, a := range analyzers {
		prob, msg := a.Fn(data)
		if prob <= 0 {
			continue
		}
		findings = append(findings, models.Finding{
			Label:       a.Label,
			Probability: prob,
			Message:     msg,
		})
	}
	return findings
}
