package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"terbium/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "terbium",
	Short: "Terbium static analyzer",
	Long:  `Terbium analyzes source files for naming, scoping, and type issues`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 256, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the tri-state color flag against the output terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return flag == "on" || (flag == "auto" && isTerminal(os.Stdout)), nil
}
