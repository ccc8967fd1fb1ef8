package cipher

import (
	"strings"

	"github.com/rawblock/cipherforge/internal/models"
)

var morseTable = map[string]byte{
	".-": 'A', "-...": 'B', "-.-.": 'C', "-..": 'D', ".": 'E',
	"..-.": 'F', "--.": 'G', "....": 'H', "..": 'I', ".---": 'J',
	"-.-": 'K', ".-..": 'L', "--": 'M', "-.": 'N', "---": 'O',
	".--.": 'P', "--.-": 'Q', ".-.": 'R', "...": 'S', "-": 'T',
	"..-": 'U', "...-": 'V', ".--": 'W', "-..-": 'X', "-.--": 'Y',
	"--..": 'Z',
	"-----": '0', ".----": '1', "..---": '2', "...--": '3', "....-": '4',
	".....": '5', "-....": '6', "--...": '7', "---..": '8', "----.": '9',
	".-.-.-": '.', "--..--": ',', "..--..": '?', ".----.": '\'',
	"-.-.--": '!', "-..-.": '/', "-.--.": '(', "-.--.-": ')',
	".-...": '&', "---...": ':', "-.-.-.": ';', "-...-": '=',
	".-.-.": '+', "-....-": '-', "..--.-": '_', ".-..-.": '"',
	"...-..-": '$', ".--.-.": '@',
}

// canonicalizeMorseSeparators maps the word-separator variants
// (/ \ \n \r , ; :) onto '|', per spec §4.2 / §9 Open Question 3: ':' and
// ';' collide with valid Morse codes, and word-split semantics wins.
func canonicalizeMorseSeparators(s string) string {
	replacer := strings.NewReplacer(
		"/", "|", "\\", "|", "\n", "|", "\r", "|", ",", "|", ";", "|", ":", "|",
	)
	return replacer.Replace(s)
}

// SolveMorse decodes a single canonicalized Morse string. If fewer than half
// of its letter codes translate, it emits nothing, per spec §4.2.
func SolveMorse(data []byte, _ models.Keychain) []models.HopResult {
	canon := canonicalizeMorseSeparators(string(data))
	words := strings.Split(canon, "|")

	var out strings.Builder
	valid, total := 0, 0

	for wi, word := range words {
		if wi > 0 {
			out.WriteByte(' ')
		}
		for _, code := range strings.Fields(word) {
			total++
			if letter, ok := morseTable[code]; ok {
				valid++
				out.WriteByte(letter)
			}
		}
	}

	if total == 0 || float64(valid)/float64(total) < 0.5 {
		return nil
	}

	return []models.HopResult{{
		Data:         []byte(out.String()),
		MethodSuffix: "MORSE",
		Fitness:      float64(valid) / float64(total),
	}}
}
