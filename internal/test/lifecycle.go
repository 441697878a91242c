package test

import (
	"testing"

	"go.uber.org/fx"
)

// LifecycleRecorder captures lifecycle hooks appended during tests.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// SingleHook returns the only registered hook, failing the test otherwise.
func (l *LifecycleRecorder) SingleHook(t *testing.T) fx.Hook {
	t.Helper()
	if len(l.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(l.Hooks))
	}
	return l.Hooks[0]
}

// ShutdownerStub records shutdown invocations.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies tests about graceful termination.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
