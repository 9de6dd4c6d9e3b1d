package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tsam3000/flashycardycourse/internal/app"
)

var studyCmd = &cobra.Command{
	Use:   "study DECK_ID",
	Short: "Jump straight into studying a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cred, err := signIn(cmd, st)
		if err != nil {
			return err
		}
		username, _ := cmd.Flags().GetString("user")

		return app.RunStudy(st, cred, username, args[0])
	},
}

func init() {
	addUserFlag(studyCmd)
}
