package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pet-arcade/internal/api"
	"github.com/vovakirdan/pet-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play minigames.

Each SSH connection gets its own session with a minigame picker menu and
plays for the wallet of its SSH user name. All connections share the
same leaderboard.

With --http a read-only JSON API is served next to it:
  GET /v1/modes, /v1/stats, /v1/scores/{mode}
  GET /v1/wallets/{owner}, /v1/wallets/{owner}/ledger
  GET /healthz

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.petarcade/host_key

Examples:
  petarcade serve                           # Listen on :23234 with auto-generated key
  petarcade serve --ssh :2222               # Listen on port 2222
  petarcade serve --http :8080              # Also serve the JSON API
  petarcade serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh rex@localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port); disabled when empty")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Maximum concurrent SSH sessions (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("ssh") {
		host.SSHAddr = flagSSHAddr
	}
	if cmd.Flags().Changed("http") {
		host.HTTPAddr = flagHTTPAddr
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     host.SSHAddr,
		HostKeyPath: flagHostKey,
		Store:       store,
		Config:      cfg,
		FPS:         host.FPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
		Logger:      logger.WithPrefix("petarcade-ssh"),
	})
	if err != nil {
		return fmt.Errorf("create SSH server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if host.HTTPAddr != "" {
		httpLogger := logger.WithPrefix("petarcade-http")
		httpServer := &http.Server{
			Addr:              host.HTTPAddr,
			Handler:           api.NewHandler(store, httpLogger).Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			httpLogger.Info("starting HTTP API", "addr", host.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	fmt.Printf("Connect with: ssh <name>@localhost -p %s\n", portOf(host.SSHAddr))
	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("servers stopped")
	return nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
