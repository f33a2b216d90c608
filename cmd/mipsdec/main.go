// Package main provides the entry point for mipsdec.
// mipsdec decodes simplified MIPS instructions written as text lines of
// binary digits and tracks the register file they modify.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := newLogger(stderr)
	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr, log: log}

	root := &ffcli.Command{
		Name:       "mipsdec",
		ShortUsage: "mipsdec <subcommand> [flags] <args>",
		FlagSet:    flag.NewFlagSet("mipsdec", flag.ContinueOnError),
		Subcommands: []*ffcli.Command{
			runCommand(env),
			decodeCommand(env),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}
	root.FlagSet.SetOutput(stderr)

	if err := root.ParseAndRun(ctx, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 1
		}
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "Interrupted.")
			return 130
		}
		log.Error(err)
		return 1
	}

	return 0
}

// environment carries the process streams into the subcommands.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return log
}
