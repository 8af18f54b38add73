package cmd

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ssargent/kenshimod/pkg/codec"
)

func newStringsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings",
		Short: "Export or import record strings for translation",
		Long: `Export or import the string and filename fields of a mod file as a json
object. Keys are "<record id>_<field>" for string fields and
"<record id>_<field>_filename" for filename fields.`,
	}
	cmd.AddCommand(newStringsExportCmd(), newStringsImportCmd())
	return cmd
}

func newStringsExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file> <out.json>",
		Short: "Write the string table of a mod file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			mf, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			table := mf.StringTable()
			data, err := json.MarshalIndent(table, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal string table: %w", err)
			}
			if err := os.WriteFile(args[1], data, 0644); err != nil {
				return fmt.Errorf("failed to write string table: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d strings to %s\n", table.Len(), args[1])
			return nil
		},
	}
}

func newStringsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file> <in.json>",
		Short: "Apply a string table to a mod file in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read string table: %w", err)
			}
			var table map[string]string
			if err := json.Unmarshal(data, &table); err != nil {
				return fmt.Errorf("failed to parse string table: %w", err)
			}

			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			applied := 0
			err = st.Update(cmd.Context(), args[0], func(mf *codec.ModFile) error {
				applied = mf.ApplyStringTable(table)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d of %d strings to %s\n", applied, len(table), args[0])
			return nil
		},
	}
}
