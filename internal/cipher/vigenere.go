package cipher

import (
	"fmt"

	"github.com/rawblock/cipherforge/internal/models"
)

const vigenereBaseFitness = 0.75

// SolveVigenere produces one hop per key in the keychain, per spec §4.2: key
// index advances only on alphabetic output positions, per-letter shift is
// the key letter mod 26.
func SolveVigenere(data []byte, keychain models.Keychain) []models.HopResult {
	if keychain.Len() == 0 {
		return nil
	}

	var hops []models.HopResult
	for idx, key := range keychain.Keys {
		out := vigenereDecrypt(data, key)
		fit := vigenereBaseFitness - 0.01*float64(idx)/float64(keychain.Len())
		hops = append(hops, models.HopResult{
			Data:         out,
			MethodSuffix: fmt.Sprintf("VIGENERE(%s)", key),
			Fitness:      fit,
		})
	}
	return hops
}

func vigenereDecrypt(data []byte, key string) []byte {
	if len(key) == 0 {
		return append([]byte(nil), data...)
	}

	out := make([]byte, len(data))
	keyPos := 0
	for i, c := range data {
		switch {
		case c >= 'A' && c <= 'Z':
			shift := keyShift(key[keyPos%len(key)])
			out[i] = byte('A' + mod26(int(c-'A')-shift))
			keyPos++
		case c >= 'a' && c <= 'z':
			shift := keyShift(key[keyPos%len(key)])
			out[i] = byte('a' + mod26(int(c-'a')-shift))
			keyPos++
		default:
			out[i] = c
		}
	}
	return out
}

func keyShift(k byte) int {
	switch {
	case k >= 'A' && k <= 'Z':
		return int(k - 'A')
	case k >= 'a' && k <= 'z':
		return int(k - 'a')
	default:
		return 0
	}
}
