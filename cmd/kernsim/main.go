package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kernsim/kernsim"
	"github.com/kernsim/kernsim/model"
	"github.com/kernsim/kernsim/runtime/scheduler"
	rfs "github.com/kernsim/kernsim/service/dao/run/fs"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	if err := app().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func app() *cli.Command {
	return &cli.Command{
		Name:    "kernsim",
		Version: version,
		Usage:   "Deterministic round-robin CPU scheduling simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML workload URL (default: plain text workload on stdin)",
			},
			&cli.IntFlag{
				Name:    "quantum",
				Aliases: []string{"q"},
				Usage:   "work units per scheduling quantum",
				Value:   scheduler.DefaultQuantum,
			},
			&cli.StringFlag{
				Name:  "runs",
				Usage: "directory archiving completed runs as JSON",
			},
			&cli.StringFlag{
				Name:  "trace-file",
				Usage: "write OpenTelemetry spans to this file",
			},
		},
		Action: simulate,
		Commands: []*cli.Command{
			runsCmd(),
		},
	}
}

func simulate(ctx context.Context, cmd *cli.Command) error {
	options := []kernsim.Option{
		kernsim.WithQuantum(int(cmd.Int("quantum"))),
	}
	if dir := cmd.String("runs"); dir != "" {
		archive, err := rfs.New(dir)
		if err != nil {
			return err
		}
		options = append(options, kernsim.WithRunDAO(archive))
	}
	if traceFile := cmd.String("trace-file"); traceFile != "" {
		options = append(options, kernsim.WithTracing("kernsim", version, traceFile))
	}

	runtime := kernsim.New(options...).Runtime()

	var workload *model.Workload
	var err error
	if URL := cmd.String("file"); URL != "" {
		workload, err = runtime.LoadWorkload(ctx, URL)
	} else {
		workload, err = runtime.ReadWorkload(os.Stdin)
	}
	if err != nil {
		return err
	}

	_, err = runtime.Simulate(ctx, workload)
	return err
}

func runsCmd() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List archived runs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "runs",
				Usage:    "directory holding archived runs",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			archive, err := rfs.New(cmd.String("runs"))
			if err != nil {
				return err
			}
			runs, err := archive.List(ctx)
			if err != nil {
				return err
			}
			for _, run := range runs {
				fmt.Printf("%s  workload=%s quantum=%d steps=%d startedAt=%s\n",
					run.ID, run.Workload, run.Quantum, run.Steps,
					run.StartedAt.Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	}
}
