package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arclight-labs/gate-cli/internal/container"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
)

var (
	registerEmail    string
	registerPassword string
	registerName     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account on the account service and log in.

Examples:
  gate register --email you@example.com --name "Your Name"`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email address")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "account password (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "display name")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if registerEmail == "" {
		return errors.New("--email is required")
	}

	password := registerPassword
	if password == "" {
		first, err := promptPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
		second, err := promptPassword(cmd, "Confirm password: ")
		if err != nil {
			return err
		}
		if first != second {
			return errors.New("passwords do not match")
		}
		password = first
	}

	uc, err := container.Resolve[driving.UseCase[domain.RegisterParams, domain.User]](deps)
	if err != nil {
		return err
	}

	user, err := uc.Call(cmd.Context(), domain.RegisterParams{
		Email:       registerEmail,
		Password:    password,
		DisplayName: registerName,
	})
	if err != nil {
		return presentError(err)
	}

	cmd.Println(theme.Success.Render(fmt.Sprintf("Account created for %s", user.Email)))
	cmd.Println(theme.Muted.Render("You are now logged in."))
	return nil
}
