package engine

import (
	"testing"

	"github.com/rawblock/cipherforge/internal/models"
)

func TestSolveBase64SingleHop(t *testing.T) {
	cfg := models.Config{
		Input:          []byte("SGVsbG8gV29ybGQ="),
		Algorithms:     "BASE64",
		Depth:          1,
		TimeoutSeconds: 10,
		MaxHeapSize:    10000,
	}

	res, err := Solve(cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !res.BestFound {
		t.Fatal("expected a best result")
	}
	if string(res.Best.Data) != "Hello World" {
		t.Errorf("best.Data = %q, want %q", res.Best.Data, "Hello World")
	}
	if res.Best.Fitness != 1.0 {
		t.Errorf("best.Fitness = %v, want 1.0", res.Best.Fitness)
	}
	if res.Best.Method != "CIPHERTEXT -> BASE64" {
		t.Errorf("best.Method = %q, want %q", res.Best.Method, "CIPHERTEXT -> BASE64")
	}
}

func TestSolveVigenereSingleHop(t *testing.T) {
	cfg := models.Config{
		Input:          []byte("Uryyb Jbeyq"),
		Algorithms:     "VIGENERE",
		Depth:          1,
		Keychain:       models.NewKeychain([]string{"N"}),
		TimeoutSeconds: 10,
		MaxHeapSize:    10000,
	}

	res, err := Solve(cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if string(res.Best.Data) != "Hello World" {
		t.Errorf("best.Data = %q, want %q", res.Best.Data, "Hello World")
	}
}

func TestSolveCribShortCircuit(t *testing.T) {
	cfg := models.Config{
		Input:          []byte("SGVsbG8gV09STEQ="), // base64 of "Hello WORLD"
		Algorithms:     "BASE64",
		Depth:          1,
		Crib:           "WORLD",
		TimeoutSeconds: 10,
		MaxHeapSize:    10000,
	}

	res, err := Solve(cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if res.Best == nil {
		t.Fatal("expected a best result")
	}
	if res.Best.CumulativeFitness < 2.0 {
		t.Errorf("expected crib boost to raise cumulative_fitness past 2.0, got %v", res.Best.CumulativeFitness)
	}
}

func TestSolveEmptyFrontierNoSolvers(t *testing.T) {
	cfg := models.Config{
		Input:      []byte("anything"),
		Algorithms: "",
	}
	if _, err := Solve(cfg); err == nil {
		t.Error("expected an error when no solvers resolve from an empty --algorithms")
	}
}
