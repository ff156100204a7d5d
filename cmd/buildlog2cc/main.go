package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/catalogue"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/config"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/generator"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/logging"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/output"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/parser"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/watcher"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/web"
)

func main() {
	flags := pflag.NewFlagSet("buildlog2cc", pflag.ExitOnError)
	flags.StringP("output", "o", "compile_commands.json", "Output JSON file path")
	flags.String("scan-root", ".", "Directory scanned for .c/.cpp files used to resolve bare filenames")
	flags.StringSlice("drivers", nil, "Recognized compiler-driver tokens (default: arm-linux toolchains)")
	flags.String("cache-wrapper", "ccache", "Cache wrapper token that may prefix a driver")
	flags.Bool("strict-source", false, "Reject bare .c/.cpp tokens without a path or catalogue entry")
	flags.Bool("watch", false, "Regenerate the database whenever the log file changes")
	flags.Bool("serve", false, "Serve the database and run summary over HTTP")
	flags.Int("port", 8080, "Port for --serve")
	flags.CountP("verbose", "v", "Increase log verbosity")
	flags.String("verbosity", "", "Log level: debug, info, warn, error")
	flags.Bool("log-json", false, "Emit logs as JSON")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <log_file> <project_name>\n\n", flags.Name())
		fmt.Fprintf(os.Stderr, "Converts a make-style build log into a JSON compilation database.\n")
		fmt.Fprintf(os.Stderr, "project_name is the directory component stripped from absolute paths.\n\n")
		fmt.Fprintln(os.Stderr, flags.FlagUsages())
	}
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := logging.LevelFromConfig(cfg.Verbosity, cfg.VerboseCnt)
	if cfg.LogJSON {
		logging.SetJSONOutput(level)
	} else {
		logging.SetLevel(level)
	}

	var logFile, project string
	switch flags.NArg() {
	case 2:
		logFile, project = flags.Arg(0), flags.Arg(1)
	case 1:
		// project name may come from the config file or environment
		logFile, project = flags.Arg(0), cfg.Project
	}
	if logFile == "" || project == "" {
		flags.Usage()
		os.Exit(2)
	}

	if err := run(cfg, logFile, project); err != nil {
		logging.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logFile, project string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	cat, err := catalogue.Scan(cfg.ScanRoot)
	if err != nil {
		return fmt.Errorf("scanning source files: %w", err)
	}
	logging.Debug("source catalogue built", "root", cfg.ScanRoot, "files", cat.Len())

	gen := &generator.Generator{
		LogPath: logFile,
		Output:  cfg.Output,
		Parser: parser.New(cwd, project, cat, parser.Options{
			Drivers:      cfg.Drivers,
			CacheWrapper: cfg.CacheWrapper,
			StrictSource: cfg.StrictSource,
		}),
	}

	res, err := gen.Run()
	if err != nil {
		return err
	}
	output.PrintSummary(logFile, cfg.Output, res)

	if !cfg.Watch && !cfg.Serve {
		return nil
	}

	ctx := context.Background()

	var server *web.Server
	errc := make(chan error, 1)
	if cfg.Serve {
		server = web.NewServer(logFile, cfg.Output)
		server.SetResult(res)
		go func() {
			errc <- server.Start(cfg.Port)
		}()
	}

	if cfg.Watch {
		lw, err := watcher.New(logFile)
		if err != nil {
			return err
		}
		defer func() { _ = lw.Close() }()
		lw.Start(ctx)

		deb := watcher.NewDebouncer(lw.Events(), 500*time.Millisecond, 5*time.Second)
		deb.Start(ctx)

		go func() {
			for range deb.Events() {
				res, err := gen.Run()
				if err != nil {
					logging.Warn("regeneration failed", "error", err)
					continue
				}
				logging.Info("database regenerated",
					"records", res.Stats.Records, "skipped", res.Stats.Skipped)
				if server != nil {
					server.SetResult(res)
				}
			}
		}()
		logging.Info("watching build log", "path", logFile)
	}

	if cfg.Serve {
		return <-errc
	}
	select {} // watch-only mode runs until interrupted
}
