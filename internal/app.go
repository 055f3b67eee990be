package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/beanbocchi/ossclient/config"
	"github.com/beanbocchi/ossclient/internal/service"
	"github.com/beanbocchi/ossclient/internal/transport"
	"github.com/beanbocchi/ossclient/pkg/objectstore/local"
	"github.com/beanbocchi/ossclient/pkg/sdk"
)

const shutdownTimeout = 5 * time.Second

// SetupLogger builds the process logger from cfg and makes it the default.
func SetupLogger(cfg config.Log, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// NewClient creates the SDK client described by cfg.
func NewClient(cfg *config.Config, logger *slog.Logger) (*sdk.Client, error) {
	return sdk.NewClient(cfg.Client.SDK(), sdk.WithLogger(logger))
}

// Mock is the local OSS API.
type Mock struct {
	Echo    *echo.Echo
	Service *service.Service
	store   *local.ClientImpl
}

// NewMock wires the store, service and routes of the local OSS API and
// uploads cfg.Seed when set.
func NewMock(ctx context.Context, cfg config.Mock) (*Mock, error) {
	store, err := local.NewClient(local.LocalConfig{
		Root:      cfg.Root,
		PublicURL: cfg.PublicBaseURL(),
		Secret:    cfg.Secret,
	})
	if err != nil {
		return nil, fmt.Errorf("create local store: %w", err)
	}

	svc := service.NewService(store, store)
	if cfg.Seed != "" {
		if _, err := svc.Seed(ctx, cfg.Seed); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	e, err := transport.NewEcho(svc)
	if err != nil {
		return nil, fmt.Errorf("create echo: %w", err)
	}

	return &Mock{Echo: e, Service: svc, store: store}, nil
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (m *Mock) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	m.store.SetSignedURL(baseURL(ln.Addr()) + transport.FilesPrefix)
	m.Echo.Listener = ln

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.Echo.Start("")
	}()

	slog.InfoContext(ctx, "oss mock listening",
		"addr", ln.Addr().String(),
		"enveloped", baseURL(ln.Addr())+transport.EnvelopedPrefix,
		"plain", baseURL(ln.Addr())+transport.PlainPrefix,
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := m.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func baseURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if ip := net.ParseIP(host); ip == nil || ip.IsUnspecified() {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
