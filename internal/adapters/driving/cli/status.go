package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/arclight-labs/gate-cli/internal/container"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connectivity and session status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	checker, err := container.Resolve[driven.NetworkChecker](deps)
	if err != nil {
		return err
	}
	accounts, err := container.Resolve[driving.AccountService](deps)
	if err != nil {
		return err
	}
	cfg, err := container.Resolve[driven.ConfigStore](deps)
	if err != nil {
		return err
	}

	if checker.IsConnected(cmd.Context()) {
		cmd.Printf("Network:  %s\n", theme.Success.Render("reachable"))
	} else {
		cmd.Printf("Network:  %s\n", theme.Error.Render("unreachable"))
	}

	session, err := accounts.Session(cmd.Context())
	switch {
	case err == nil && session.IsAuthenticated():
		cmd.Printf("Session:  %s (%s)\n", theme.Success.Render("active"), session.User.Email)
	case err == nil:
		cmd.Printf("Session:  %s (%s)\n", theme.Error.Render("expired"), session.User.Email)
	case errors.Is(err, domain.ErrNotAuthenticated):
		cmd.Printf("Session:  %s\n", theme.Muted.Render("none"))
	default:
		return presentError(err)
	}

	cmd.Printf("Config:   %s\n", cfg.Path())
	return nil
}
