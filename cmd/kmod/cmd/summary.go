package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>",
		Short: "Sample record text for language detection",
		Long: `Decode the first summary.sample_records records and print two samples of
up to summary.max_chars characters: the letters and spaces of record names
and string fields, and every other character.

Example:
  kmod summary weapons.mod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			text, symbols, err := st.Summarize(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "text: %s\n", text)
			fmt.Fprintf(cmd.OutOrStdout(), "symbols: %s\n", symbols)
			return nil
		},
	}
}
