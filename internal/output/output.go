// Package output implements spec §6's stable output record format: the
// per-candidate OUTPUT/CRIB FOUND line, its optional ENG sub-line, the
// long-data truncation rule, and the final best-result block.
//
// Grounded on internal/heuristics/alert_system.go's Alert struct and
// emission path: assemble a small structured record, then print/write it
// through a single formatting choke point.
package output

import (
	"fmt"
	"os"

	"github.com/rawblock/cipherforge/internal/models"
)

const (
	truncateAt = 61
	truncateTo = 58
)

// truncate implements spec §6: data longer than 61 chars is cut to 58
// chars plus "...".
func truncate(data string) string {
	if len(data) <= truncateAt {
		return data
	}
	return data[:truncateTo] + "..."
}

// Kind labels a record as a regular threshold hit or a crib match.
type Kind string

const (
	KindOutput    Kind = "OUTPUT"
	KindCribFound Kind = "CRIB FOUND"
)

// FormatRecord renders one candidate's output line per spec §6. When
// englishMode is true, a second "[ENG: <e>%]" line is appended.
func FormatRecord(n *models.CandidateNode, kind Kind, englishMode bool, engScore float64) string {
	line := fmt.Sprintf(
		"[%d][%.0f%%][Agg:%.2f]\t [%s] %q - Method: %q",
		n.Depth, n.Fitness*100, n.CumulativeFitness, kind, truncate(string(n.Data)), n.Method,
	)
	if englishMode {
		line += fmt.Sprintf("\n\t [ENG: %.0f%%]", engScore*100)
	}
	return line
}

// FormatBest renders the final three-line best-result block.
func FormatBest(best *models.CandidateNode, englishMode bool) string {
	if best == nil {
		return "no high-probability solving results"
	}
	return fmt.Sprintf(
		"--- Best Result (Agg:%.2f) ---\n[%d][%.0f%%]\t %q\nMethod: %q",
		best.CumulativeFitness, best.Depth, best.Fitness*100, truncate(string(best.Data)), best.Method,
	)
}

// Sink mirrors every emitted record to stdout and, if configured, to an
// output file — the CLI's external output-file collaborator from spec §6.
//
// The §6 record stream is unconditional: it is gated only by the
// probability/English thresholds in internal/engine, never by --silent.
// --silent suppresses a separate human-facing live view (spec §1's
// out-of-scope external collaborator) — the captured original source
// confirms the same split: ui_log_result (main.c) prints based on
// force_stdout/p_set/english_threshold and is never gated by silent, which
// instead only flows into ui_init/ui_silent_mode (ui.c) to hide its
// own top-5 terminal view.
type Sink struct {
	file *os.File
}

// NewSink opens path (if non-empty) for append-mirroring.
func NewSink(path string) (*Sink, error) {
	s := &Sink{}
	if path == "" {
		return s, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("output: opening mirror file %q: %w", path, err)
	}
	s.file = f
	return s, nil
}

// Emit writes line to stdout and to the mirror file, if any.
func (s *Sink) Emit(line string) {
	fmt.Println(line)
	if s.file != nil {
		fmt.Fprintln(s.file, line)
	}
}

// Close releases the mirror file, if one was opened.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
