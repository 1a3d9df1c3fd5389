package version

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cliutil-go/cliutil/ansi"
)

// NewCommand creates a version command for info. outputFormat is an
// optional pointer to a global output format flag (e.g. "json"); nil means
// human-readable output.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			format := ""
			if outputFormat != nil {
				format = *outputFormat
			}
			if format == "json" {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if quiet {
				fmt.Fprintln(out, info.Version)
				return nil
			}

			heading, value, reset := "", "", ""
			if f, ok := out.(*os.File); ok && ansi.Enabled(f) {
				heading = ansi.Escape("1")
				value = ansi.ForegroundColor8Bit(45)
				reset = ansi.Reset()
			}
			fmt.Fprintf(out, "%s%s Version%s\n", heading, info.Name, reset)
			fmt.Fprintf(out, "  Version:    %s%s%s\n", value, info.Version, reset)
			fmt.Fprintf(out, "  Build Date: %s%s%s\n", value, info.BuildDate, reset)
			fmt.Fprintf(out, "  Git Commit: %s%s%s\n", value, info.GitCommit, reset)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
