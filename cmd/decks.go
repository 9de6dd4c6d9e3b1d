package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List your decks",
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

		decks, err := st.Decks().List(cmd.Context(), cred)
		if err != nil {
			return err
		}
		if len(decks) == 0 {
			fmt.Println("No decks yet.")
			return nil
		}
		for _, d := range decks {
			fmt.Printf("%-14s %-30s %d cards\n", d.ID, d.Name, d.CardCount)
		}
		return nil
	},
}

func init() {
	addUserFlag(decksCmd)
}
