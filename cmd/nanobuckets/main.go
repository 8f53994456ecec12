package main

import (
	"flag"
	"log"
	"os"

	"github.com/bookingcom/nanobuckets/pkg/cfg"
	"github.com/bookingcom/nanobuckets/pkg/hardware"
	"go.uber.org/zap"
)

// BuildVersion is provided to be overridden at build time. Eg. go build -ldflags -X 'main.BuildVersion=...'
var BuildVersion = "(development build)"

func main() {
	configPath := flag.String("config", "", "Path to the `config file`.")
	view := flag.String("view", "", "What to print: buckets or hardware. Overrides the config.")
	output := flag.String("output", "", "Output format: text or json. Overrides the config.")
	flag.Parse()

	config := cfg.DefaultConfig()
	if *configPath != "" {
		fh, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("Failed to open config file: %s", err)
		}

		config, err = cfg.Parse(fh)
		if err != nil {
			log.Fatalf("Failed to parse config file: %s", err)
		}
		fh.Close()
	}

	if *view != "" {
		config.View = *view
	}
	if *output != "" {
		config.Output = *output
	}

	lg, err := config.Logger.Build()
	if err != nil {
		log.Fatalf("Failed to initiate logger: %s", err)
	}
	lg = lg.Named("nanobuckets")
	defer lg.Sync()

	if err := config.Validate(); err != nil {
		lg.Fatal("invalid config", zap.Error(err))
	}

	lg.Debug("starting nanobuckets",
		zap.String("build_version", BuildVersion),
		zap.String("view", config.View),
		zap.String("output", config.Output),
	)

	switch config.View {
	case cfg.ViewHardware:
		err = writeHardware(os.Stdout, hardware.Options(), config.Output)
	default:
		err = printBuckets(config, lg)
	}

	if err != nil {
		lg.Fatal("failed to write output", zap.Error(err))
	}
}

func printBuckets(config cfg.Config, lg *zap.Logger) error {
	b, err := config.Builder()
	if err != nil {
		return err
	}

	bs := b.Build()
	config.Selection().Apply(bs)

	lg.Debug("built buckets",
		zap.Int("buckets", len(bs)),
		zap.Int("regions", len(b.Regions())),
		zap.Ints("toggled", config.Selection().Indices()),
	)

	return writeBuckets(os.Stdout, bs, config.Output)
}
