package cli

import (
	"github.com/spf13/cobra"

	"github.com/arclight-labs/gate-cli/internal/container"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
)

var logoutRevoke bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long: `End the current session and remove it from local storage.

With --revoke, the access token is also invalidated on the account
service (best effort; the local session is cleared either way).`,
	RunE: runLogout,
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutRevoke, "revoke", false, "revoke the access token on the service")
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	uc, err := container.Resolve[driving.VoidUseCase[domain.LogoutParams]](deps)
	if err != nil {
		return err
	}

	if err := uc.Call(cmd.Context(), domain.LogoutParams{RevokeRemote: logoutRevoke}); err != nil {
		return presentError(err)
	}

	cmd.Println(theme.Success.Render("Logged out."))
	return nil
}
