package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sessionctl",
	Short: "Inspect chatbot sessions and dry-run the federated group hook",
	Long: `sessionctl runs the same session operations the API resolvers run,
against the configured MongoDB, on behalf of a given user.

Examples:
  sessionctl sessions list --user <sub>
  sessionctl sessions get <session-id> --user <sub> --role admin
  sessionctl hook simulate --event event.json`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.ini", "Path to the ini configuration file")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
