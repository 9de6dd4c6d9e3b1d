package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsam3000/flashycardycourse/internal/deckfile"
)

var exportCmd = &cobra.Command{
	Use:   "export DECK_ID",
	Short: "Export a deck to JSON",
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

		data, err := deckfile.Export(cmd.Context(), st.Decks(), cred, args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
		return nil
	},
}

func init() {
	addUserFlag(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
