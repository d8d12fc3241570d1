package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prasad1624/acronym-flashcard-generator/internal/logger"
)

const DefaultComponentTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

type Manager struct {
	components []named
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
}

type named struct {
	name      string
	component Shutdownable
}

// NewManager bounds each component's Shutdown by timeout.
func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	return &Manager{
		logger:  log,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, named{name: name, component: component})
}

// Listen runs onSignal once SIGINT or SIGTERM arrives. It never stops
// components itself: onSignal runs on the listener goroutine and must only
// hand the request to the UI loop. Listening ends when Shutdown is called.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

// Shutdown stops registered components in reverse order. Later calls are no-ops.
// Call it once the UI loop has exited.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		entry := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			entry.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": entry.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": entry.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}
