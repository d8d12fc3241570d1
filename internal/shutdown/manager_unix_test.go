//go:build unix

package shutdown

import (
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasad1624/acronym-flashcard-generator/internal/logger"
)

func TestSignalOnlyRunsHandler(t *testing.T) {
	m := NewManager(logger.NoOp{}, DefaultComponentTimeout)
	t.Cleanup(m.Shutdown)

	var stopped atomic.Bool
	m.Register("session", stopFunc(func() { stopped.Store(true) }))

	signalled := make(chan struct{})
	m.Listen(func() { close(signalled) })

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-signalled:
	case <-time.After(2 * time.Second):
		t.Fatal("signal handler did not run")
	}

	// Give a stray shutdown on the listener goroutine time to show up.
	time.Sleep(50 * time.Millisecond)

	assert.False(t, stopped.Load(), "components must wait for an explicit Shutdown")
	select {
	case <-m.done:
		t.Fatal("listener must not close the manager")
	default:
	}
}
