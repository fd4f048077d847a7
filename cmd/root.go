/*
Copyright © 2022 Morgan Gangwere <morgan.gangwere@gmail.com>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/indrora/lsxattr/lsxattr/reader"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	ErrUsage = errors.New("expected exactly one FILE argument")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lsxattr FILE",
	Short: "Show the extended attributes of a file",
	Long: `lsxattr lists the extended attributes attached to FILE and prints
the value of each one as a hex dump.

Failures to read individual attributes are reported and skipped.`,
	// Every argument is a filename, even one that starts with a dash.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.Wrapf(ErrUsage, "got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dump(cmd.OutOrStdout(), newReader(), args[0])
	},
}

// Overridden by tests.
var newReader = reader.NewSystemReader

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(os.Args[0], os.Args[1:]))
}

func execute(argv0 string, args []string) int {

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Usage: %s FILE\n", argv0)
		return 1
	} else if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}
