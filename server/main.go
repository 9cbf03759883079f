package main

import (
	"flag"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/format"
	"go-currency-converter/http"

	nhttp "net/http"
)

func main() {
	configPath := flag.String("config", "converter.yaml", "path to the YAML config file")
	flag.Parse()

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load(*configPath)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, cfg.LevelOption())

	catalog, err := cfg.Catalog()
	if err != nil {
		level.Error(logger).Log("msg", "bad currency table", "err", err)
		os.Exit(1)
	}

	exchangeService := exchange.NewService(catalog.Rates())
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	handler := http.NewServer(exchangeService, format.New(cfg.ZeroDecimalSet()), catalog, log.With(logger, "component", "http"))
	handler.From, handler.To = cfg.Pair()

	level.Info(logger).Log("msg", "listening", "addr", cfg.Listen)
	if err := nhttp.ListenAndServe(cfg.Listen, handler); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
