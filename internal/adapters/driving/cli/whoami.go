package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/arclight-labs/gate-cli/internal/container"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
)

var whoamiJSON bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in account",
	Long: `Show the account behind the stored session.

When the network is reachable the account details are refreshed from
the service; offline, the locally stored copy is shown.`,
	RunE: runWhoami,
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	uc, err := container.Resolve[driving.NoParamsUseCase[domain.User]](deps)
	if err != nil {
		return err
	}

	user, err := uc.Call(cmd.Context())
	if err != nil {
		return presentError(err)
	}

	if whoamiJSON {
		encoded, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(encoded))
		return nil
	}

	cmd.Println(theme.Title.Render(user.Email))
	if user.DisplayName != "" {
		cmd.Printf("Name:     %s\n", user.DisplayName)
	}
	cmd.Printf("ID:       %s\n", user.ID)
	cmd.Printf("Verified: %s\n", yesNo(user.Verified))
	if !user.CreatedAt.IsZero() {
		cmd.Printf("Since:    %s\n", user.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
