package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ssargent/kenshimod/pkg/codec"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show mod file header metadata",
		Long: `Show the header of a mod file without decoding its records.

Example:
  kmod info weapons.mod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			info, err := st.LoadInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "File type:\t%s (0x%x)\n", info.FileType, int32(info.FileType))
			fmt.Fprintf(w, "Version:\t%d\n", info.Version)
			if info.FileType == codec.FileTypeStandard {
				fmt.Fprintf(w, "Author:\t%s\n", info.Author)
				fmt.Fprintf(w, "Description:\t%s\n", info.Description)
				fmt.Fprintf(w, "Dependencies:\t%s\n", info.Dependencies)
				fmt.Fprintf(w, "References:\t%s\n", info.References)
			} else {
				fmt.Fprintf(w, "Details:\t%d bytes\n", info.DetailsSize)
			}
			fmt.Fprintf(w, "Records:\t%d\n", info.RecordCount)
			return nil
		},
	}
}
