package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tuilogin "github.com/arclight-labs/gate-cli/internal/adapters/driving/tui/login"
	"github.com/arclight-labs/gate-cli/internal/container"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driving"
)

var (
	loginEmail       string
	loginPassword    string
	loginInteractive bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the account service",
	Long: `Authenticate against the account service and store the session locally.

The password is read from an interactive prompt unless --password is
given. With --interactive, a full-screen form collects both fields.

Examples:
  gate login --email you@example.com
  gate login --interactive`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email address")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted when omitted)")
	loginCmd.Flags().BoolVarP(&loginInteractive, "interactive", "i", false, "use the interactive login form")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	params, err := collectLoginParams(cmd)
	if err != nil {
		return err
	}
	if params.Email == "" {
		return nil // form aborted, nothing to do
	}

	uc, err := container.Resolve[driving.UseCase[domain.LoginParams, domain.User]](deps)
	if err != nil {
		return err
	}

	user, err := uc.Call(cmd.Context(), params)
	if err != nil {
		return presentError(err)
	}

	cmd.Println(theme.Success.Render(fmt.Sprintf("Logged in as %s", user.Email)))
	if !user.Verified {
		cmd.Println(theme.Muted.Render("Your email address is not verified yet."))
	}
	return nil
}

// collectLoginParams gathers credentials from flags, the interactive
// form, or a terminal prompt. An empty result means the user aborted.
func collectLoginParams(cmd *cobra.Command) (domain.LoginParams, error) {
	if loginInteractive {
		params, submitted, err := tuilogin.Run(theme)
		if err != nil {
			return domain.LoginParams{}, err
		}
		if !submitted {
			cmd.Println(theme.Muted.Render("Login cancelled."))
			return domain.LoginParams{}, nil
		}
		return params, nil
	}

	if loginEmail == "" {
		return domain.LoginParams{}, errors.New("--email is required (or use --interactive)")
	}

	password := loginPassword
	if password == "" {
		var err error
		password, err = promptPassword(cmd, "Password: ")
		if err != nil {
			return domain.LoginParams{}, err
		}
	}

	return domain.LoginParams{Email: loginEmail, Password: password}, nil
}

// promptPassword reads a password without echo when attached to a
// terminal, and falls back to a plain line read otherwise (pipes, tests).
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)

	if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		cmd.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
