// Package cli implements the cobra command surface for gate.
package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arclight-labs/gate-cli/internal/adapters/driven/api"
	configfile "github.com/arclight-labs/gate-cli/internal/adapters/driven/config/file"
	"github.com/arclight-labs/gate-cli/internal/adapters/driven/network"
	"github.com/arclight-labs/gate-cli/internal/adapters/driven/storage/sqlite"
	"github.com/arclight-labs/gate-cli/internal/adapters/driving/tui/styles"
	"github.com/arclight-labs/gate-cli/internal/container"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
	"github.com/arclight-labs/gate-cli/internal/core/services"
	"github.com/arclight-labs/gate-cli/internal/core/usecase"
	"github.com/arclight-labs/gate-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// defaultBaseURL is used when no api.base_url is configured.
const defaultBaseURL = "https://api.gate.arclight.dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// deps is the process-wide dependency container. Tests replace it with
// a container holding doubles; production wiring happens once in the
// root command's PersistentPreRunE.
var deps *container.Container

// theme is the shared output styling.
var theme = styles.DefaultStyles()

var rootCmd = &cobra.Command{
	Use:   "gate",
	Short: "gate is a command-line client for the gate account service",
	Long: `gate manages your account session from the terminal.

Log in against the account service, inspect the current session, and
log out again. Configuration lives in ~/.gate/config.toml; the session
is stored locally so authenticated commands work across invocations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if deps == nil {
			c, err := buildContainer(configDir)
			if err != nil {
				return err
			}
			deps = c
			if err := watchConfig(cmd.Context(), deps); err != nil {
				logger.Warn("config watch unavailable: %v", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.gate)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildContainer registers the production wiring. Registration is pure
// bookkeeping: nothing is constructed until the first resolution, and
// every singleton is built exactly once no matter how many commands
// resolve it.
func buildContainer(configDir string) (*container.Container, error) {
	c := container.New()

	regs := []error{
		container.Provide(c, func(*container.Resolver) (driven.ConfigStore, error) {
			return configfile.NewConfigStore(configDir)
		}),

		container.Provide(c, func(r *container.Resolver) (driven.NetworkChecker, error) {
			cfg, err := container.From[driven.ConfigStore](r)
			if err != nil {
				return nil, err
			}
			if addr := cfg.GetString(configfile.KeyProbeAddress); addr != "" {
				return network.NewChecker(addr), nil
			}
			return network.NewCheckerForService(baseURL(cfg)), nil
		}),

		container.Provide(c, func(r *container.Resolver) (driven.AccountAPI, error) {
			cfg, err := container.From[driven.ConfigStore](r)
			if err != nil {
				return nil, err
			}
			apiCfg := api.DefaultConfig()
			apiCfg.BaseURL = baseURL(cfg)
			if secs := cfg.GetInt(configfile.KeyAPITimeout); secs > 0 {
				apiCfg.Timeout = time.Duration(secs) * time.Second
			}
			if perMinute := cfg.GetInt(configfile.KeyLoginRate); perMinute > 0 {
				apiCfg.LoginRatePerMinute = perMinute
			}
			return api.NewClient(apiCfg), nil
		}),

		container.Provide(c, func(*container.Resolver) (*sqlite.Store, error) {
			return sqlite.NewStore("")
		}),

		container.Provide(c, func(r *container.Resolver) (driven.SessionStore, error) {
			store, err := container.From[*sqlite.Store](r)
			if err != nil {
				return nil, err
			}
			return store.SessionStore(), nil
		}),

		container.Provide(c, func(r *container.Resolver) (driving.AccountService, error) {
			accountAPI, err := container.From[driven.AccountAPI](r)
			if err != nil {
				return nil, err
			}
			checker, err := container.From[driven.NetworkChecker](r)
			if err != nil {
				return nil, err
			}
			sessions, err := container.From[driven.SessionStore](r)
			if err != nil {
				return nil, err
			}
			return services.NewAccountService(accountAPI, checker, sessions, uuid.NewString), nil
		}),

		// Use cases are transient: each command invocation gets a
		// fresh, stateless instance over the shared service.
		container.ProvideTransient(c, func(r *container.Resolver) (driving.UseCase[domain.LoginParams, domain.User], error) {
			accounts, err := container.From[driving.AccountService](r)
			if err != nil {
				return nil, err
			}
			return usecase.NewLoginUser(accounts), nil
		}),
		container.ProvideTransient(c, func(r *container.Resolver) (driving.UseCase[domain.RegisterParams, domain.User], error) {
			accounts, err := container.From[driving.AccountService](r)
			if err != nil {
				return nil, err
			}
			return usecase.NewRegisterUser(accounts), nil
		}),
		container.ProvideTransient(c, func(r *container.Resolver) (driving.VoidUseCase[domain.LogoutParams], error) {
			accounts, err := container.From[driving.AccountService](r)
			if err != nil {
				return nil, err
			}
			return usecase.NewLogoutUser(accounts), nil
		}),
		container.ProvideTransient(c, func(r *container.Resolver) (driving.NoParamsUseCase[domain.User], error) {
			accounts, err := container.From[driving.AccountService](r)
			if err != nil {
				return nil, err
			}
			return usecase.NewCurrentUser(accounts), nil
		}),
	}

	for _, err := range regs {
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// watchConfig keeps the config store current for the lifetime of the
// command: edits to the config file are reloaded as they happen, so
// long-running invocations (the interactive login form in particular)
// read fresh values instead of whatever was on disk at startup.
func watchConfig(ctx context.Context, c *container.Container) error {
	cfg, err := container.Resolve[driven.ConfigStore](c)
	if err != nil {
		return err
	}

	changes, err := cfg.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for range changes {
			logger.Info("configuration reloaded from %s", cfg.Path())
		}
	}()
	return nil
}

// baseURL reads the configured service URL, falling back to the default.
func baseURL(cfg driven.ConfigStore) string {
	if u := cfg.GetString(configfile.KeyAPIBaseURL); u != "" {
		return u
	}
	return defaultBaseURL
}
