package cmd

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/kenshimod/pkg/codec"
)

// dumpView is the document written by dump
type dumpView struct {
	Info          codec.Info      `yaml:"info" json:"info"`
	Records       []*codec.Record `yaml:"records" json:"records"`
	LeftoverBytes int             `yaml:"leftover_bytes" json:"leftover_bytes"`
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump mod file records as yaml or json",
		Long: `Dump the header metadata and every decoded record of a mod file.

Examples:
  kmod dump weapons.mod
  kmod dump weapons.mod --format json --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			limit, _ := cmd.Flags().GetInt("limit")
			if format != "yaml" && format != "json" {
				return fmt.Errorf("unknown format %q, want yaml or json", format)
			}

			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			mf, err := st.LoadLimit(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			view := dumpView{
				Info:          mf.Info(),
				Records:       mf.Records,
				LeftoverBytes: len(mf.Leftover),
			}
			return writeDump(cmd.OutOrStdout(), format, view)
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
	cmd.Flags().IntP("limit", "n", codec.NoLimit, "Maximum number of records to decode (negative = all)")
	return cmd
}

func writeDump(w io.Writer, format string, view dumpView) error {
	if format == "json" {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return enc.Close()
}
