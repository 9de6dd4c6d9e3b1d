package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage local profiles",
}

var userAddCmd = &cobra.Command{
	Use:   "add USERNAME",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		password, err := readPassword()
		if err != nil {
			return err
		}

		u, err := st.Users().Create(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		fmt.Printf("Created profile %q\n", u.Username)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		users, err := st.Users().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No profiles yet. Create one with: flashycardy user add USERNAME")
			return nil
		}
		for _, u := range users {
			fmt.Println(u.Username)
		}
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
}
