// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/tebeka/atexit"
	"golang.org/x/text/language"

	"github.com/ezrec/norma/config"
	"github.com/ezrec/norma/logs"
	"github.com/ezrec/norma/machine"
	"github.com/ezrec/norma/norma"
	"github.com/ezrec/norma/report"
	"github.com/ezrec/norma/translate"
)

func main() {
	registers := config.Values{}
	var initFile string
	var delay time.Duration
	var maxSteps int
	var quiet bool
	var verbose bool
	var logFile string
	var lang string

	flag.Var(registers, "r", "Register initial value NAME=VALUE (repeatable)")
	flag.StringVar(&initFile, "i", "", ".yaml or .star register values file")
	flag.DurationVar(&delay, "delay", 0, "Delay between trace lines")
	flag.IntVar(&maxSteps, "max-steps", 0, "Stop after this many instructions (0 = no limit)")
	flag.BoolVar(&quiet, "q", false, "Quiet mode, only show the final register table")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&logFile, "log", "", "Also write diagnostics as JSON to this file")
	flag.StringVar(&lang, "lang", "", "Language of the report (default from locale)")

	flag.Parse()

	if flag.NArg() != 1 {
		atexit.Fatalf("%v: expected one program file, got %v", os.Args[0], flag.Args())
	}
	path := flag.Arg(0)

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			atexit.Fatalf("%v: %v", lang, err)
		}
		translate.SetLanguage(tag)
	}

	level := new(slog.LevelVar)
	if verbose {
		level.Set(slog.LevelDebug)
	}

	var record *os.File
	if len(logFile) != 0 {
		var err error
		record, err = os.Create(logFile)
		if err != nil {
			atexit.Fatalf("%v: %v", logFile, err)
		}
		atexit.Register(func() { record.Close() })
	}

	var logger *slog.Logger
	if record != nil {
		logger = logs.New(os.Stderr, level, record)
	} else {
		logger = logs.New(os.Stderr, level, nil)
	}

	parser := &norma.Parser{Verbose: verbose, Logger: logger}
	prog, _, err := parser.LoadFile(path)
	if err != nil {
		atexit.Fatalf("%v: %v", path, err)
	}

	values := config.Values{}
	if len(initFile) != 0 {
		loaded, err := config.Load(initFile)
		if err != nil {
			atexit.Fatalf("%v: %v", initFile, err)
		}
		values.Merge(loaded)
	}
	values.Merge(registers)

	m := machine.NewMachine(prog)
	m.Verbose = verbose
	m.Logger = logger
	m.Init(values)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := &report.Writer{Out: os.Stdout, Quiet: quiet}

	var bank *norma.Registers
	for snap := range machine.Paced(ctx, machine.Limit(m.Trace(), maxSteps), delay) {
		err = out.Snapshot(snap)
		if err != nil {
			atexit.Fatal(err)
		}
		if snap.Phase == machine.PHASE_END {
			bank = snap.Bank
		}
	}

	if bank == nil {
		logger.Warn("run stopped", "steps", m.Steps, "label", m.Counter)
		bank = m.Registers
	}

	err = out.Final(bank)
	if err != nil {
		atexit.Fatal(err)
	}

	stop()
	atexit.Exit(0)
}
