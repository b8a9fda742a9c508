// Package main provides the bibsort CLI entry point.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether reporting commands print human-readable
// output instead of JSON.
var humanOutput bool

func main() {
	// A reader that goes away mid-output (bibsort refs.bib | head) must
	// end the run cleanly, so keep the runtime from turning EPIPE into a
	// fatal SIGPIPE.
	signal.Ignore(syscall.SIGPIPE)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bibsort <file>",
	Short: "Sort BibTeX entries and detect duplicate keys and DOIs",
	Long: `bibsort parses a BibTeX-style bibliography, sorts its entries by
citation key (or by first author), checks for duplicate keys and DOIs,
and prints the sorted entries.

To rewrite a bibliography in place, use --out with the input path rather
than shell redirection: "bibsort refs.bib > refs.bib" truncates the file
before it is read, while --out writes only after the whole file has been
parsed and validated.

Defaults for the toggles can be set in the config file (see "bibsort
config"); flags override the file.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runSort,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Pick up BIBSORT_CONFIG and friends from a .env file if present.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON for reporting commands")
	rootCmd.Version = Version
}
