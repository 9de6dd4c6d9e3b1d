package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/store"
)

// addUserFlag registers the --user flag on commands that act on one
// user's data outside the TUI.
func addUserFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("user", "u", "", "Username to act as (required)")
	_ = cmd.MarkFlagRequired("user")
}

// signIn authenticates the --user flag's profile. The password comes
// from FLASHY_PASSWORD, or from an interactive prompt when unset.
func signIn(cmd *cobra.Command, st *store.Store) (auth.Credentials, error) {
	username, _ := cmd.Flags().GetString("user")
	if username == "" {
		return auth.Credentials{}, errors.New("--user is required")
	}

	password, err := readPassword()
	if err != nil {
		return auth.Credentials{}, err
	}

	cred, err := st.Users().Authenticate(cmd.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			return auth.Credentials{}, errors.New("invalid username or password")
		}
		return auth.Credentials{}, err
	}
	return cred, nil
}

func readPassword() (string, error) {
	if p := os.Getenv("FLASHY_PASSWORD"); p != "" {
		return p, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
