package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/aaustin-1965/app-ip-address/docs"
	"github.com/aaustin-1965/app-ip-address/internal/auth"
	"github.com/aaustin-1965/app-ip-address/internal/domain"
	apihttp "github.com/aaustin-1965/app-ip-address/internal/http"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LogLevel     slog.Level

	AuthEnabled bool
	Issuer      string
	JWKSURL     string
	Audience    string
}

func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("port", c.Port),
		slog.Duration("read_timeout", c.ReadTimeout),
		slog.Duration("write_timeout", c.WriteTimeout),
		slog.String("log_level", c.LogLevel.String()),
		slog.Bool("auth_enabled", c.AuthEnabled),
		slog.String("issuer", c.Issuer),
		slog.String("audience", c.Audience),
	)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		LogLevel:     slog.LevelInfo,
		Issuer:       os.Getenv("AUTH_ISSUER"),
		JWKSURL:      os.Getenv("AUTH_JWKS_URL"),
		Audience:     os.Getenv("AUTH_AUDIENCE"),
	}

	if cfg.Port == "" {
		cfg.Port = "4040"
	}

	var errs []error
	if v := os.Getenv("READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("READ_TIMEOUT: %w", err))
		}
		cfg.ReadTimeout = d
	}
	if v := os.Getenv("WRITE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("WRITE_TIMEOUT: %w", err))
		}
		cfg.WriteTimeout = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}
	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("AUTH_ENABLED: %w", err))
		}
		cfg.AuthEnabled = enabled
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		JWKSURL:  cfg.JWKSURL,
		Audience: cfg.Audience,
	})
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve runs the API on listener until ctx is cancelled. The listener is
// closed on return.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := NewLogger(cfg.LogLevel)

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		_ = listener.Close()
		return err
	}

	service := domain.NewLoggingAddressService(logger, domain.NewAddressService())
	api := apihttp.NewAPI(logger, service, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving api", "addr", listener.Addr().String(), "config", cfg)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
