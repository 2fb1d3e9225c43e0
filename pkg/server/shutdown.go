package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/LerianStudio/mini-ledger/pkg/log"
	"github.com/gofiber/fiber/v2"
)

// ErrNoServerConfigured indicates no server was configured for the manager.
var ErrNoServerConfigured = errors.New("no server configured: use WithHTTPServer()")

// ServerManager handles the lifecycle and graceful shutdown of the HTTP server.
type ServerManager struct {
	httpServer        *fiber.App
	logger            log.Logger
	httpAddress       string
	serverStarted     chan struct{}
	serverStartedOnce sync.Once
	shutdownChan      <-chan struct{}
	shutdownOnce      sync.Once
	shutdownTimeout   time.Duration
	startupErrors     chan error
}

// NewServerManager creates a new instance of ServerManager.
// If logger is nil, a no-op logger is used to ensure nil-safe operation
// throughout the server lifecycle.
func NewServerManager(logger log.Logger) *ServerManager {
	if logger == nil {
		logger = log.NewNop()
	}

	return &ServerManager{
		logger:          logger,
		serverStarted:   make(chan struct{}),
		shutdownTimeout: 30 * time.Second,
		startupErrors:   make(chan error, 1),
	}
}

// WithHTTPServer configures the HTTP server for the ServerManager.
func (sm *ServerManager) WithHTTPServer(app *fiber.App, address string) *ServerManager {
	sm.httpServer = app
	sm.httpAddress = address

	return sm
}

// WithShutdownChannel configures a custom shutdown channel for the ServerManager.
// This allows tests to trigger shutdown deterministically instead of relying on OS signals.
func (sm *ServerManager) WithShutdownChannel(ch <-chan struct{}) *ServerManager {
	sm.shutdownChan = ch

	return sm
}

// WithShutdownTimeout configures the maximum duration to wait for the HTTP
// server to drain in-flight requests. Defaults to 30 seconds.
func (sm *ServerManager) WithShutdownTimeout(d time.Duration) *ServerManager {
	sm.shutdownTimeout = d

	return sm
}

// ServerStarted returns a channel that is closed when the server goroutine has
// been launched. It signals that the goroutine was spawned, not that the socket
// is bound and ready to accept connections.
func (sm *ServerManager) ServerStarted() <-chan struct{} {
	return sm.serverStarted
}

// StartWithGracefulShutdown validates configuration and starts the server.
// It blocks until a termination signal is received, the shutdown channel is
// closed, or server startup fails.
func (sm *ServerManager) StartWithGracefulShutdown() error {
	if sm.httpServer == nil {
		return ErrNoServerConfigured
	}

	sm.startServer()
	sm.handleShutdown()

	return nil
}

// startServer starts the HTTP server in a separate goroutine.
func (sm *ServerManager) startServer() {
	go func() {
		sm.logInfof("Starting HTTP server on %s", sm.httpAddress)

		if err := sm.httpServer.Listen(sm.httpAddress); err != nil {
			sm.logErrorf("HTTP server error: %v", err)

			select {
			case sm.startupErrors <- fmt.Errorf("HTTP server: %w", err):
			default:
			}
		}
	}()

	sm.serverStartedOnce.Do(func() {
		close(sm.serverStarted)
	})
}

// handleShutdown waits for a termination signal, a closed shutdown channel, or
// a server startup error, then executes the shutdown sequence.
func (sm *ServerManager) handleShutdown() {
	if sm.shutdownChan != nil {
		select {
		case <-sm.shutdownChan:
		case err := <-sm.startupErrors:
			sm.logErrorf("Server startup failed: %v", err)
		}
	} else {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)

		select {
		case <-c:
			signal.Stop(c)
		case err := <-sm.startupErrors:
			sm.logErrorf("Server startup failed: %v", err)
		}
	}

	sm.logInfo("Gracefully shutting down...")

	sm.executeShutdown()
}

// executeShutdown performs the actual shutdown operations in order.
// It is idempotent: only the first invocation executes the shutdown sequence.
func (sm *ServerManager) executeShutdown() {
	sm.shutdownOnce.Do(func() {
		sm.logInfo("Shutting down HTTP server...")

		if err := sm.httpServer.ShutdownWithTimeout(sm.shutdownTimeout); err != nil {
			sm.logErrorf("Error during HTTP server shutdown: %v", err)
		}

		sm.logInfo("Syncing logger...")

		if err := sm.logger.Sync(context.Background()); err != nil {
			sm.logErrorf("Failed to sync logger: %v", err)
		}

		sm.logInfo("Graceful shutdown completed")
	})
}

func (sm *ServerManager) logInfo(msg string) {
	sm.logger.Log(context.Background(), log.LevelInfo, msg)
}

func (sm *ServerManager) logInfof(format string, args ...any) {
	sm.logger.Log(context.Background(), log.LevelInfo, fmt.Sprintf(format, args...))
}

func (sm *ServerManager) logErrorf(format string, args ...any) {
	sm.logger.Log(context.Background(), log.LevelError, fmt.Sprintf(format, args...))
}
