package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/kenshimod/pkg/codec"
)

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records <file>",
		Short: "List the records of a mod file",
		Long: `List the records of a mod file with their category and change kind.

Examples:
  kmod records weapons.mod
  kmod records gamedata.base --limit 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			mf, err := st.LoadLimit(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tCHANGE\tNAME\tSTRING ID\tINSTANCES")
			for _, rec := range mf.Records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
					rec.ID, rec.ModType(), rec.ChangeType(), rec.Name, rec.StringID, len(rec.Instances))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if mf.Partial() {
				fmt.Fprintf(cmd.OutOrStdout(), "showing %d of %d records\n", len(mf.Records), mf.Info().RecordCount)
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", codec.NoLimit, "Maximum number of records to decode (negative = all)")
	return cmd
}
