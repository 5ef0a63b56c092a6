// Command peejay is a CLI front end over the peejay library: it validates
// JSON-ish documents against the configured grammar extensions, or prints
// the event sequence a backend would receive, for use while wiring a new
// Backend implementation.
package main

import (
	"io"
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"
)

func main() {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})

	rootCmd := &cobra.Command{
		Use:           "peejay",
		Short:         "Streaming JSON parser CLI",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newValidateCmd(logger))
	rootCmd.AddCommand(newEventsCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func setLogLevel(logger *charmlog.Logger, level string) {
	switch level {
	case "debug":
		logger.SetLevel(charmlog.DebugLevel)
	case "warn":
		logger.SetLevel(charmlog.WarnLevel)
	case "error":
		logger.SetLevel(charmlog.ErrorLevel)
	default:
		logger.SetLevel(charmlog.InfoLevel)
	}
}

// openInputs reads each named file, or stdin when name is "-" or the list
// is empty, returning the data paired with a display name for diagnostics.
func openInputs(args []string) ([]namedInput, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]namedInput, 0, len(args))
	for _, arg := range args {
		var data []byte
		var err error
		if arg == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, namedInput{name: arg, data: data})
	}
	return inputs, nil
}

type namedInput struct {
	name string
	data []byte
}
