// Package engine implements spec §4.3's search driver: the best-first,
// bounded-depth expansion loop over the priority frontier. This is the
// core the rest of the system supports.
//
// Grounded on internal/heuristics/fund_tracer.go's FlowGraph.AddHop (hop-by-hop
// graph construction with depth/confidence decay and a running best tracked
// across hops) for the node/hop/depth shape, and internal/scanner/block_scanner.go
// for the top-level "loop until exhausted or stopped, track a running best,
// report a final summary" control flow.
package engine

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rawblock/cipherforge/internal/fitness"
	"github.com/rawblock/cipherforge/internal/frontier"
	"github.com/rawblock/cipherforge/internal/models"
	"github.com/rawblock/cipherforge/internal/output"
	"github.com/rawblock/cipherforge/internal/registry"
)

// verbose is a process-wide, write-once-at-startup flag read by debugf,
// mirroring the teacher's verbose-gated debug logging (spec §5).
var verbose bool

func debugf(format string, args ...any) {
	if verbose {
		log.Printf("[Engine] "+format, args...)
	}
}

// Result summarizes one solve run for the caller (spec §6's final block).
type Result struct {
	Best      *models.CandidateNode
	BestFound bool
}

// Solve runs spec §4.3's expansion loop to completion: timeout, empty
// frontier, or depth exhaustion on every path. It never returns an error for
// an empty or unproductive run — that is a normal "no results" termination,
// per spec §7.
func Solve(cfg models.Config) (Result, error) {
	verbose = cfg.Verbose

	solvers := registry.GetSolvers(cfg.Algorithms)
	if len(solvers) == 0 {
		return Result{}, fmt.Errorf("engine: no solvers resolved from algorithms %q", cfg.Algorithms)
	}

	sink, err := output.NewSink(cfg.OutputPath)
	if err != nil {
		return Result{}, err
	}
	defer sink.Close()

	root := models.NewRoot(cfg.Input)
	front := frontier.New(root)

	englishMode := cfg.EnglishEnabled()
	probThreshold := cfg.ProbabilityThreshold()
	englishThreshold := cfg.EnglishThreshold()
	hasCrib := cfg.Crib != ""
	cribBytes := []byte(cfg.Crib)

	var timeoutAt time.Time
	hasTimeout := cfg.TimeoutSeconds > 0
	if hasTimeout {
		timeoutAt = time.Now().Add(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	var best *models.CandidateNode
	var bestKey float64

	for front.Size() > 0 {
		if hasTimeout && time.Now().After(timeoutAt) {
			debugf("timeout reached, draining frontier")
			break
		}

		n := front.PopBest()

		if cfg.MonitorPath != "" && strings.Contains(n.Method, cfg.MonitorPath) {
			log.Printf("[Monitor] %s", n.Method)
		}

		var engScore float64
		if englishMode {
			engScore = fitness.ScoreEnglishDetailed(n.Data)
		}

		if n.Fitness > probThreshold || (englishMode && engScore > englishThreshold) {
			sink.Emit(output.FormatRecord(n, output.KindOutput, englishMode, engScore))
		}

		var key float64
		if englishMode {
			key = engScore + 1
		} else {
			key = n.CumulativeFitness
		}
		if best == nil || key > bestKey {
			best = n.Clone()
			bestKey = key
		}

		if hasCrib && bytes.Contains(n.Data, cribBytes) {
			sink.Emit(output.FormatRecord(n, output.KindCribFound, englishMode, engScore))
			continue
		}

		if n.Depth >= cfg.Depth {
			continue
		}

		if cfg.MaxHeapSize > 0 {
			front.Prune(cfg.MaxHeapSize)
		}

		for _, s := range solvers {
			if s.PreventConsecutive && n.LastSolver == s.Label {
				continue
			}

			hops := s.Fn(n.Data, cfg.Keychain)
			for _, h := range hops {
				if bytes.Equal(h.Data, n.Data) {
					continue
				}

				child := &models.CandidateNode{
					Data:              h.Data,
					Fitness:           h.Fitness,
					CumulativeFitness: n.CumulativeFitness + h.Fitness,
					Method:            n.Method + " -> " + h.MethodSuffix,
					Depth:             n.Depth + 1,
					LastSolver:        s.Label,
				}

				if hasCrib && bytes.Contains(child.Data, cribBytes) {
					child.Fitness = 1.0
					child.CumulativeFitness += 1.0
				}

				front.Insert(child)
			}
		}
	}

	front.Destroy()

	sink.Emit(output.FormatBest(best, englishMode))

	return Result{Best: best, BestFound: best != nil}, nil
}
