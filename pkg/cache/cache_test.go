package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if n, err := c.Clear(ctx); n != 0 || err != nil {
		t.Errorf("Clear = %d, %v", n, err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHashAll(t *testing.T) {
	if HashAll([]byte("ab"), []byte("c")) == HashAll([]byte("a"), []byte("bc")) {
		t.Error("HashAll should keep part boundaries")
	}
	if HashAll([]byte("x")) != HashAll([]byte("x")) {
		t.Error("HashAll should be deterministic")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	ak1 := k.AnalysisKey("hash123", AnalysisKeyOpts{Op: "path", Args: []string{"a", "b"}})
	ak2 := k.AnalysisKey("hash123", AnalysisKeyOpts{Op: "path", Args: []string{"b", "a"}})
	if ak1 == ak2 {
		t.Error("Different Args should produce different keys")
	}
	if ak1[:14] != "analysis:path:" {
		t.Errorf("AnalysisKey prefix unexpected: %s", ak1)
	}

	ck1 := k.AnalysisKey("hash123", AnalysisKeyOpts{Op: "color", Scorer: "mean"})
	ck2 := k.AnalysisKey("hash123", AnalysisKeyOpts{Op: "color", Scorer: "mean", Cutoff: 5})
	if ck1 == ck2 {
		t.Error("Different Cutoff should produce different keys")
	}

	rk1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Layout: "neato"})
	rk2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Layout: "neato"})
	if rk1 == rk2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "user:123:")

	key := scoped.AnalysisKey("h", AnalysisKeyOpts{Op: "mst"})
	if want := "user:123:" + inner.AnalysisKey("h", AnalysisKeyOpts{Op: "mst"}); key != want {
		t.Errorf("ScopedKeyer AnalysisKey = %s, want %s", key, want)
	}

	art := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if len(art) < 15 || art[:9] != "user:123:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", art)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "dot"})
	if key[:len("prefix:artifact:dot:")] != "prefix:artifact:dot:" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrBackend)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, ErrBackend) {
		t.Error("Retryable should unwrap to the original error")
	}
	if err.Error() != ErrBackend.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	if IsRetryable(errors.New("plain")) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = 100 * time.Millisecond })
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err=%v calls=%d", err, calls)
	}

	// Non-retryable error stops immediately
	plain := errors.New("plain")
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return plain
	})
	if err != plain || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrBackend)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrBackend)
	})
	if !errors.Is(err, ErrBackend) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrBackend)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
