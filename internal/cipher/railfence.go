package cipher

import (
	"fmt"

	"github.com/rawblock/cipherforge/internal/models"
)

const railfenceBaseFitness = 0.75

// maxRails implements spec §9 Open Question 2's chosen formula:
// min(32, max(len, len/2+2)) for len >= 4, otherwise len.
func maxRails(n int) int {
	if n < 4 {
		return n
	}
	m := n
	if half := n/2 + 2; half > m {
		m = half
	}
	if m > 32 {
		m = 32
	}
	return m
}

// SolveRailfence brute-forces rail counts k in [2, maxRails(len)] and offsets
// o in [0, 2k-3], per spec §4.2. Inputs shorter than 2 bytes emit nothing.
func SolveRailfence(data []byte, _ models.Keychain) []models.HopResult {
	n := len(data)
	if n < 2 {
		return nil
	}

	mr := maxRails(n)
	if mr < 2 {
		return nil
	}

	var hops []models.HopResult
	for k := 2; k <= mr; k++ {
		for o := 0; o <= 2*k-3; o++ {
			out := railfenceDecrypt(data, k, o)
			fit := railfenceBaseFitness - 0.01*float64(k)/float64(mr)
			hops = append(hops, models.HopResult{
				Data:         out,
				MethodSuffix: fmt.Sprintf("RAILFENCE(k=%d, o=%d)", k, o),
				Fitness:      fit,
			})
		}
	}
	return hops
}

// railfenceDecrypt reconstructs the zig-zag mapping over cycle length
// 2k-2, marks each position's row, fills rows in order with ciphertext
// bytes, then reads back out by the position-to-row mapping.
func railfenceDecrypt(data []byte, k, offset int) []byte {
	n := len(data)
	cyc := 2*k - 2

	rows := make([]int, n)
	counts := make([]int, k)
	for i := 0; i < n; i++ {
		pos := (i + offset) % cyc
		var row int
		if pos < k {
			row = pos
		} else {
			row = cyc - pos
		}
		rows[i] = row
		counts[row]++
	}

	rowData := make([][]byte, k)
	cursor := 0
	for r := 0; r < k; r++ {
		rowData[r] = data[cursor : cursor+counts[r]]
		cursor += counts[r]
	}

	out := make([]byte, n)
	rowCursor := make([]int, k)
	for i := 0; i < n; i++ {
		r := rows[i]
		out[i] = rowData[r][rowCursor[r]]
		rowCursor[r]++
	}
	return out
}
