package scan

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestGuardSingleWinner(t *testing.T) {
	guard := NewGuard(NewCache())

	var wins atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.TryBegin("/data/projects") {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("got %d winners, want exactly 1", wins.Load())
	}
	if !guard.InFlight("/data/projects") {
		t.Error("winning path should be in flight")
	}
}

func TestGuardCachedPathNotAdmitted(t *testing.T) {
	cache := NewCache()
	guard := NewGuard(cache)

	cache.Put("/data/done", SizeRecord{Size: 1, FileCount: 1})
	if guard.TryBegin("/data/done") {
		t.Error("cached path must not be admitted")
	}
}

func TestGuardEndAllowsRestart(t *testing.T) {
	guard := NewGuard(NewCache())

	if !guard.TryBegin("/data/x") {
		t.Fatal("first TryBegin should win")
	}
	if guard.TryBegin("/data/x") {
		t.Error("second TryBegin should lose while in flight")
	}
	guard.End("/data/x")
	if guard.InFlight("/data/x") {
		t.Error("path should no longer be in flight after End")
	}
	if !guard.TryBegin("/data/x") {
		t.Error("TryBegin should win again after End on an uncached path")
	}
}

func TestGuardIndependentPaths(t *testing.T) {
	guard := NewGuard(NewCache())

	if !guard.TryBegin("/a") || !guard.TryBegin("/b") {
		t.Error("distinct paths must not contend")
	}
}
