package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/storage"
)

const defaultHostKeyPath = "~/.petarcade/host_key"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string         // host:port, e.g. ":23234"
	HostKeyPath string         // Generated on first start; defaults to ~/.petarcade/host_key
	Store       *storage.Store // Optional; without it every connection plays with an in-memory wallet
	Config      config.Config
	FPS         int
	IdleTimeout time.Duration
	MaxSessions int // 0 = unlimited
	Logger      *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		HostKeyPath: defaultHostKeyPath,
		Config:      config.DefaultConfig(),
		FPS:         60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the arcade menu to SSH clients. Every connection gets its
// own app model, session controller and wallet; only the store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "petarcade-ssh",
		})
	}
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = defaultHostKeyPath
	}
	cfg.HostKeyPath = config.ExpandHome(cfg.HostKeyPath)

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	srv := &SSHServer{config: cfg, logger: cfg.Logger}

	// Middlewares run last to first: limit, log, then the app
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
			srv.limitMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// owner maps an SSH user to the wallet it plays for.
func owner(sshSession ssh.Session) string {
	if u := sshSession.User(); u != "" {
		return u
	}
	return "guest"
}

// teaHandler creates the arcade app for one SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	name := owner(sshSession)
	logger := s.logger.With("user", name)
	model := NewAppModel(AppOptions{
		Config: s.config.Config,
		Store:  s.config.Store,
		Wallet: OpenWallet(name, s.config.Store, logger),
		FPS:    s.config.FPS,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
		Logger: logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
}

// limitMiddleware turns connections away once MaxSessions play at the same time.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		if limit := s.config.MaxSessions; limit > 0 && n > int64(limit) {
			s.logger.Warn("session refused", "user", sshSession.User(), "active", n-1, "limit", limit)
			wish.Fatalln(sshSession, "The arcade is full, please try again later.")
			return
		}
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		remote := sshSession.RemoteAddr().String()
		s.logger.Info("session started", "user", owner(sshSession), "remote", remote, "active", s.Active())

		next(sshSession)

		s.logger.Info("session ended",
			"user", owner(sshSession),
			"remote", remote,
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// ListenAndServe starts the SSH server and blocks until ctx is done or
// the server fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.Active())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
// The store belongs to the caller and stays open.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
