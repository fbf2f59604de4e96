package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"dltime-cli/cmd/version"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

var (
	versionShort  bool
	versionOutput string
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dlt",
	Long:  "Print the version number of dlt, the Go toolchain and platform it was built for.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Current()
		out := cmd.OutOrStdout()

		if versionShort {
			_, err := fmt.Fprintln(out, info.Version)
			return err
		}

		switch strings.ToLower(versionOutput) {
		case outputJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		case outputYAML:
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(info); err != nil {
				return fmt.Errorf("failed to encode yaml: %w", err)
			}
			return enc.Close()
		case "", outputText:
			_, err := fmt.Fprintln(out, info.String())
			return err
		default:
			return fmt.Errorf("unsupported output format %q (want text, json or yaml)", versionOutput)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", outputText, "Output format: text, json or yaml")
	rootCmd.AddCommand(versionCmd)
}
