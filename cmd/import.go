package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsam3000/flashycardycourse/internal/deckfile"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a deck from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cred, err := signIn(cmd, st)
		if err != nil {
			return err
		}

		d, err := deckfile.Import(cmd.Context(), st.Decks(), cred, data)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		fmt.Printf("Imported %q (%s)\n", d.Name, d.ID)
		return nil
	},
}

func init() {
	addUserFlag(importCmd)
}
