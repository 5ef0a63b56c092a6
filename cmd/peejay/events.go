package main

import (
	"fmt"
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/mcvoid/peejay"
	"github.com/mcvoid/peejay/internal/eventlog"
)

func newEventsCmd(logger *charmlog.Logger) *cobra.Command {
	cfg := newParserConfig()

	cmd := &cobra.Command{
		Use:   "events [file...]",
		Short: "Parse each file (or stdin) and print the backend event sequence",
		RunE: func(_ *cobra.Command, args []string) error {
			setLogLevel(logger, cfg.logLevel)
			return runEvents(logger, cfg, args)
		},
	}
	cfg.RegisterFlags(cmd.Flags())
	return cmd
}

func runEvents(logger *charmlog.Logger, cfg *parserConfig, args []string) error {
	inputs, err := openInputs(args)
	if err != nil {
		return err
	}

	failed := false
	for _, in := range inputs {
		backend := eventlog.New()
		events, err := peejay.ParseBytes(in.data, backend, cfg.options()...)
		for _, ev := range events {
			fmt.Fprintf(os.Stdout, "%s: %s\n", in.name, ev)
		}
		if err != nil {
			failed = true
			if perr, ok := err.(*peejay.Error); ok {
				logger.Error("parse error", "file", in.name, "code", perr.Code, "pos", perr.Pos)
			} else {
				logger.Error("parse error", "file", in.name, "err", err)
			}
		}
	}
	if failed {
		return fmt.Errorf("one or more documents failed to parse")
	}
	return nil
}
