package main

import (
	"fmt"
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/mcvoid/peejay"
	"github.com/mcvoid/peejay/internal/nullbackend"
)

func newValidateCmd(logger *charmlog.Logger) *cobra.Command {
	cfg := newParserConfig()

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Parse each file (or stdin) and report the first error, if any",
		RunE: func(_ *cobra.Command, args []string) error {
			setLogLevel(logger, cfg.logLevel)
			return runValidate(logger, cfg, args)
		},
	}
	cfg.RegisterFlags(cmd.Flags())
	return cmd
}

func runValidate(logger *charmlog.Logger, cfg *parserConfig, args []string) error {
	inputs, err := openInputs(args)
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		_, err := peejay.ParseBytes(in.data, nullbackend.New(), cfg.options()...)
		if err != nil {
			failed = true
			if perr, ok := err.(*peejay.Error); ok {
				logger.Error("invalid", "file", in.name, "code", perr.Code, "pos", perr.Pos)
			} else {
				logger.Error("invalid", "file", in.name, "err", err)
			}
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: ok\n", in.name)
	}
	if failed {
		return fmt.Errorf("one or more documents failed validation")
	}
	return nil
}
