package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchEnv(t *testing.T) {
	parent := []string{"PATH=/usr/bin", "HOME=/home/bench"}
	env := benchEnv(parent, Config{Lanes: 4, Iterations: 2048})

	assert.Contains(t, env, "ITERATIONS=2048")
	assert.Contains(t, env, "LANES=4")
	assert.Contains(t, env, "RUSTFLAGS= -C target-cpu=native")
	assert.Contains(t, env, "PATH=/usr/bin")
	assert.Contains(t, env, "HOME=/home/bench")
}

func TestBenchEnvPreservesExistingRustflags(t *testing.T) {
	parent := []string{"RUSTFLAGS=-C opt-level=3"}
	env := benchEnv(parent, Config{Lanes: 1, Iterations: 8192})

	assert.Contains(t, env, "RUSTFLAGS=-C opt-level=3 -C target-cpu=native")

	count := 0
	for _, kv := range env {
		if strings.HasPrefix(kv, "RUSTFLAGS=") {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one RUSTFLAGS entry")
}

func TestBenchEnvDuplicateFlagTolerated(t *testing.T) {
	// appending twice is harmless, never deduplicated
	parent := []string{"RUSTFLAGS=-C target-cpu=native"}
	env := benchEnv(parent, Config{Lanes: 1, Iterations: 8192})
	assert.Contains(t, env, "RUSTFLAGS=-C target-cpu=native -C target-cpu=native")
}

func TestBenchEnvDoesNotMutateParent(t *testing.T) {
	parent := []string{"RUSTFLAGS=-C debuginfo=1", "TERM=xterm"}
	benchEnv(parent, Config{Lanes: 16, Iterations: 512})
	assert.Equal(t, []string{"RUSTFLAGS=-C debuginfo=1", "TERM=xterm"}, parent)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "abc", tail("abc", 10))
	assert.Equal(t, "cde", tail("abcde", 3))
	assert.Equal(t, "", tail("", 3))
}
