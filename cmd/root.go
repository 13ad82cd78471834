package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/grove-tools/litbuild/internal/litErrors"
	"github.com/grove-tools/litbuild/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     "litbuild",
	Short:   "Compose a literate-programming project's code and docs trees",
	Long:    "litbuild reads a tree of literate notebooks and plain files, resolves\ncross-references between them, and composes two output trees: a code\ntree ready to run and a docs tree ready to read.",
	Version: version.Version,
}

func init() {
	rootCmd.SilenceErrors = true
}

// Execute runs the root command and exits with code 1 on any error.
// Errors are silenced by cobra (SilenceErrors above) so that this is the
// single place responsible for printing them to standard error. An error
// belonging to the closed taxonomy has its diagnostic tagged with the
// taxonomy member.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var tax litErrors.Taxonomy
		if errors.As(err, &tax) {
			fmt.Fprintln(os.Stderr, color.RedString("Error (%s):", string(tax.Kind())), err)
		} else {
			fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		}
		os.Exit(1)
	}
}
