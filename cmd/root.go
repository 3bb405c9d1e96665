package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/slackconv/pkg/convert"
	"github.com/grovetools/slackconv/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	programName = "slackconv"
	usageLine   = "Usage: " + programName + " INPUT_JSON"
)

var errUsage = errors.New("expected exactly one INPUT_JSON argument")

func newRootCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   programName + " INPUT_JSON",
		Short: "Convert a Slackbot responses export into bot configuration",
		Long: `Reads a Slackbot custom-responses export and prints the responses
section of the bot configuration: every record narrowed to its
"triggers" and "responses" fields, in the original order.

Set SLACKCONV_DEBUG=true to log progress to stderr.

Example:
  slackconv slackbot_responses.json > responses.json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := convert.ConvertFile(args[0], log)
			if err != nil {
				return err
			}
			// Output is only written once the whole document is built.
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return errUsage
	})
	return cmd
}

// Execute runs the converter against the process arguments and returns the
// exit status.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	log := logger.New(stderr)

	root := newRootCmd(log)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usageLine)
		} else {
			log.WithError(err).Error("Conversion failed")
		}
		return 1
	}
	return 0
}
