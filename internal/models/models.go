// Package models holds the plain data types shared across cipherforge's
// solve/analyze core: the candidate search node, the keychain, the solver and
// analyzer descriptors, and the run configuration assembled by the CLI.
package models

import "github.com/google/uuid"

// CandidateNode is a single point in the solve search graph (spec §3).
//
// The root node has Fitness == CumulativeFitness == 1.0, Depth == 0,
// Method == "CIPHERTEXT", LastSolver == "".
type CandidateNode struct {
	Data              []byte  `json:"data"`
	Fitness           float64 `json:"fitness"`
	CumulativeFitness float64 `json:"cumulativeFitness"`
	Depth             int     `json:"depth"`
	Method            string  `json:"method"`
	LastSolver        string  `json:"lastSolver,omitempty"`
}

// RootMethod is the method label of the seed node.
const RootMethod = "CIPHERTEXT"

// NewRoot builds the root candidate node for a solve run.
func NewRoot(data []byte) *CandidateNode {
	return &CandidateNode{
		Data:              data,
		Fitness:           1.0,
		CumulativeFitness: 1.0,
		Depth:             0,
		Method:            RootMethod,
	}
}

// Clone returns a deep copy, used when snapshotting the running best result.
func (c *CandidateNode) Clone() *CandidateNode {
	data := make([]byte, len(c.Data))
	copy(data, c.Data)
	return &CandidateNode{
		Data:              data,
		Fitness:           c.Fitness,
		CumulativeFitness: c.CumulativeFitness,
		Depth:             c.Depth,
		Method:            c.Method,
		LastSolver:        c.LastSolver,
	}
}

// Score is the depth-normalized composite score used to order the frontier
// (spec §4.3): cumulative_fitness / (depth + 1).
func (c *CandidateNode) Score() float64 {
	return c.CumulativeFitness / float64(c.Depth+1)
}

// Keychain is an ordered list of non-empty keys supplied externally to keyed
// solvers (currently Vigenère).
type Keychain struct {
	Keys []string
}

// NewKeychain builds a keychain from individual key strings, skipping empty
// entries. It does not split "|"-joined strings; the CLI does that first.
func NewKeychain(raw []string) Keychain {
	kc := Keychain{Keys: make([]string, 0, len(raw))}
	for _, k := range raw {
		if k == "" {
			continue
		}
		kc.Keys = append(kc.Keys, k)
	}
	return kc
}

// Len reports the number of usable keys.
func (k Keychain) Len() int { return len(k.Keys) }

// HopResult is one output of a solver invocation (spec §3).
type HopResult struct {
	Data         []byte
	MethodSuffix string
	Fitness      float64
}

// SolverFunc expands a candidate's data into zero or more hops.
type SolverFunc func(data []byte, keychain Keychain) []HopResult

// SolverDescriptor is a named entry in the solver registry (spec §3, §4.4).
type SolverDescriptor struct {
	Label              string
	Popularity         float64
	PreventConsecutive bool
	Fn                 SolverFunc
}

// AnalyzerFunc classifies an input and returns a probability in [0,1] plus a
// human-readable message.
type AnalyzerFunc func(data []byte) (probability float64, message string)

// AnalyzerDescriptor is a named entry in the analyzer registry (spec §4.4).
type AnalyzerDescriptor struct {
	Label string
	Fn    AnalyzerFunc
}

// Finding is one analyzer's verdict on the input.
type Finding struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Message     string  `json:"message"`
}

// Config is the fully-resolved set of options for one solve or analyze run,
// assembled by the CLI dispatcher (spec §6) — the external collaborator's
// interface into the core.
type Config struct {
	Task               string // "A" or "S"
	Input              []byte
	ProbabilityPercent int // 0-100, per-hop fitness threshold for OUTPUT emission
	EnglishPercent     int // 0-100, -1 disables English mode
	MonitorPath        string
	Algorithms         string // csv or "common"
	Depth              int
	Keychain           Keychain
	Crib               string
	OutputPath         string
	Silent             bool // suppresses the auxiliary live view only, never the §6 record stream
	TimeoutSeconds     int
	MaxHeapSize        int
	Verbose            bool
}

// ProbabilityThreshold returns the configured probability threshold in [0,1].
func (c Config) ProbabilityThreshold() float64 {
	return float64(c.ProbabilityPercent) / 100.0
}

// EnglishEnabled reports whether English-mode filtering/best-tracking is on.
func (c Config) EnglishEnabled() bool {
	return c.EnglishPercent >= 0
}

// EnglishThreshold returns the configured English threshold in [0,1].
func (c Config) EnglishThreshold() float64 {
	return float64(c.EnglishPercent) / 100.0
}

// RunID is a per-invocation correlation tag, logged by the CLI's verbose
// startup line (monitor and engine debug lines do not carry it), mirroring the teacher's use of uuid to tag EvidenceEdge/investigation
// records.
type RunID string

// NewRunID mints a fresh run identifier.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}
