package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Check that a mod file re-encodes byte for byte",
		Long: `Decode a mod file and encode it again in memory, then compare the result
with the original bytes. Nothing is written.

Example:
  kmod roundtrip weapons.mod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storeFrom(cmd)
			if err != nil {
				return err
			}
			original, mf, err := st.ReadRaw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			encoded, err := st.Codec().EncodeBytes(mf)
			if err != nil {
				return err
			}

			if offset := firstDifference(original, encoded); offset >= 0 {
				return fmt.Errorf("round trip differs at offset %d (original %d bytes, encoded %d bytes)",
					offset, len(original), len(encoded))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "identical: %d records, %d bytes\n", len(mf.Records), len(encoded))
			return nil
		},
	}
}

// firstDifference returns the first offset where a and b differ, or -1
func firstDifference(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
