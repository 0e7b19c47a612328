package glload

import (
	"testing"
	"unsafe"
)

// A resolver that cannot find any symbol makes the binding fail on the first
// required entry point, which is enough to observe the once-per-process
// behavior without a live GL context.
func TestLoad_ResolvesOnceAndStaysSticky(t *testing.T) {
	calls := 0
	err := Load(func(name string) unsafe.Pointer {
		calls++
		return nil
	})
	if err == nil {
		t.Fatalf("expected a failure from a resolver that finds nothing")
	}
	if calls == 0 {
		t.Fatalf("resolver was never invoked")
	}

	resolved := calls
	again := Load(func(name string) unsafe.Pointer {
		calls++
		return nil
	})
	if again != err {
		t.Fatalf("expected the sticky first result, got %v then %v", err, again)
	}
	if calls != resolved {
		t.Fatalf("second Load resolved symbols again: %d calls, then %d", resolved, calls)
	}
}
