package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipsdec/config"
	"github.com/sarchlab/mipsdec/console"
	"github.com/sarchlab/mipsdec/emu"
	"github.com/sarchlab/mipsdec/insts"
	"github.com/sarchlab/mipsdec/runner"
	"github.com/sarchlab/mipsdec/source"
	"github.com/sarchlab/mipsdec/trace"
)

func runCommand(env *environment) *ffcli.Command {
	fs := flag.NewFlagSet("mipsdec run", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	var (
		configPath = fs.String("config", "", "Path to YAML run configuration")
		mode       = fs.String("mode", config.ModeAsk, "Display mode: step, all or ask")
		regs       = fs.Bool("regs", true, "Print the register file after each instruction")
		useColor   = fs.Bool("color", false, "Highlight branch outcomes and unknown words")
		traceOn    = fs.Bool("trace", false, "Log every executed instruction")
		stats      = fs.Bool("stats", false, "Print instruction statistics at the end")
		dumpPath   = fs.String("dump", "", "Write the final register state as JSON to this path")
	)

	return &ffcli.Command{
		Name:       "run",
		ShortUsage: "mipsdec run [flags] <instruction-file>",
		ShortHelp:  "Decode and execute every instruction of a file",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("MIPSDEC")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("usage: mipsdec run [flags] <instruction-file>")
			}

			cfg := config.Default()
			if *configPath != "" {
				var err error
				if cfg, err = config.Load(*configPath); err != nil {
					return err
				}
			}

			// Flags given explicitly override the file.
			fs.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "mode":
					cfg.Mode = *mode
				case "regs":
					cfg.ShowRegisters = *regs
				case "color":
					cfg.Color = *useColor
				case "trace":
					cfg.Trace = *traceOn
				case "stats":
					cfg.Stats = *stats
				case "dump":
					cfg.DumpPath = *dumpPath
				}
			})

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runFile(ctx, env, cfg, args[0])
		},
	}
}

func runFile(ctx context.Context, env *environment, cfg *config.Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open instruction file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stdin := bufio.NewReader(env.stdin)

	mode := cfg.Mode
	if mode == config.ModeAsk {
		if mode, err = runner.AskMode(stdin, env.stdout); err != nil {
			return err
		}
	}

	next, err := runner.ForMode(mode, stdin, env.stdout)
	if err != nil {
		return err
	}

	var opts []emu.EmulatorOption
	counter := trace.NewCounter()
	if cfg.Stats {
		opts = append(opts, emu.WithHook(counter))
	}
	if cfg.Trace {
		env.log.SetLevel(logrus.DebugLevel)
		opts = append(opts, emu.WithHook(trace.NewLogger(env.log)))
	}
	emulator := emu.NewEmulator(opts...)

	printer := console.NewPrinter(env.stdout,
		console.WithRegisters(cfg.ShowRegisters),
		console.WithColor(cfg.Color && !color.NoColor),
	)

	r := runner.New(
		runner.WithEmulator(emulator),
		runner.WithPrinter(printer),
		runner.WithLogger(env.log),
		runner.WithContinue(next),
	)

	summary, err := r.Run(ctx, file)
	if err != nil {
		return err
	}

	env.log.WithFields(logrus.Fields{
		"lines":    summary.Lines,
		"executed": summary.Executed,
		"skipped":  summary.Skipped,
		"stopped":  summary.Stopped,
	}).Debug("run finished")

	if cfg.Stats {
		fmt.Fprintln(env.stdout)
		if err := counter.Stats().Report(env.stdout); err != nil {
			return err
		}
	}

	if cfg.DumpPath != "" {
		return dumpRegisters(emulator.RegFile(), cfg.DumpPath)
	}

	return nil
}

func dumpRegisters(regFile *emu.RegFile, path string) error {
	data, err := regFile.Snapshot().MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize registers: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write register dump: %w", err)
	}

	return nil
}

func decodeCommand(env *environment) *ffcli.Command {
	fs := flag.NewFlagSet("mipsdec decode", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	var (
		verbose = fs.Bool("v", false, "Dump the extracted fields of each word")
		regs    = fs.Bool("regs", false, "Print the register file after the last word")
	)

	return &ffcli.Command{
		Name:       "decode",
		ShortUsage: "mipsdec decode [flags] <32 binary digits>...",
		ShortHelp:  "Decode words given on the command line",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("usage: mipsdec decode [flags] <32 binary digits>...")
			}

			emulator := emu.NewEmulator()
			printer := console.NewPrinter(env.stdout,
				console.WithRegisters(false), console.WithColor(false))

			for i, arg := range args {
				word, err := source.ParseLine(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}

				if *verbose {
					fmt.Fprint(env.stdout, spew.Sdump(insts.Extract(word)))
				}

				result := emulator.Step(word)
				if err := printer.PrintStep(word, result, emulator.RegFile()); err != nil {
					return err
				}
			}

			if *regs {
				return printer.PrintRegisters(emulator.RegFile())
			}
			return nil
		},
	}
}
