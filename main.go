package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/config"
	"go-currency-converter/console"
	"go-currency-converter/exchange"
	"go-currency-converter/format"
	"go-currency-converter/pair"
)

// main runs the interactive two-field converter on stdin/stdout.
func main() {
	configPath := flag.String("config", "converter.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// the console owns stdout, logs go to stderr
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = level.NewFilter(logger, cfg.LevelOption())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	catalog, err := cfg.Catalog()
	if err != nil {
		level.Error(logger).Log("msg", "bad currency table", "err", err)
		os.Exit(1)
	}

	service := exchange.NewService(catalog.Rates())
	service = exchange.NewLoggingService(log.With(logger, "component", "exchange"), service)
	formatter := format.New(cfg.ZeroDecimalSet())

	from, to := cfg.Pair()
	controller := pair.New(service, formatter, from, to, log.With(logger, "component", "pair"))

	fmt.Println(`type "help" for commands`)
	session := console.NewSession(controller, catalog, os.Stdout)
	if err := session.Run(os.Stdin); err != nil {
		level.Error(logger).Log("msg", "console stopped", "err", err)
		os.Exit(1)
	}
}
