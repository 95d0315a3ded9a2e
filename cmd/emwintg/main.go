package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wxgate/emwintg"
	"github.com/wxgate/emwintg/internal/config"
	"github.com/wxgate/emwintg/internal/logger"
)

func main() {
	feedSet := flag.String("feeds", "text", "Feed set to stream: text or image")
	feedSetAlias := flag.String("f", "", "Alias for -feeds")

	configFile := flag.String("config", "", "Path to a YAML configuration file with a custom feed catalog. Overrides -feeds.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	logLevel := flag.String("log-level", config.DefaultLogLevel, "Log level: trace, debug, info, warn, error")
	flag.Parse()

	if *feedSetAlias != "" {
		*feedSet = *feedSetAlias
	}
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}

	logCfg := config.NewDefaultLogConfig()
	logCfg.LogLevel = *logLevel
	appLogger, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}

	feeds, err := resolveFeeds(*feedSet, *configFile)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to resolve feed catalog")
	}

	stream, err := emwintg.NewStream(feeds, emwintg.WithLogger(appLogger))
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to start stream")
	}
	defer stream.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-sigCh:
			appLogger.Info().Str("signal", sig.String()).Msg("Shutting down")
			return
		case event := <-stream.Events():
			if event.Err != nil {
				appLogger.Error().Err(event.Err).Msg("Stream error")
				continue
			}
			fmt.Printf("%s:\n    %.100q\n", event.Product.Filename, event.Product.StringContents())
		}
	}
}

// resolveFeeds picks the feed catalog: a custom YAML file when given,
// otherwise one of the built-in sets.
func resolveFeeds(feedSet, configFile string) ([]emwintg.Feed, error) {
	if configFile != "" {
		cfg, err := config.LoadStreamConfig(configFile)
		if err != nil {
			return nil, err
		}
		feeds := make([]emwintg.Feed, 0, len(cfg.Feeds))
		for _, fc := range cfg.Feeds {
			feeds = append(feeds, emwintg.Feed{
				Name:            fc.Name,
				URL:             fc.URL,
				RefetchInterval: fc.RefetchInterval(),
				MaxTicks:        fc.MaxTicks,
			})
		}
		return feeds, nil
	}

	switch feedSet {
	case "text":
		return emwintg.TextFeeds(), nil
	case "image":
		return emwintg.ImageFeeds(), nil
	default:
		return nil, fmt.Errorf("unknown feed set %q (want text or image)", feedSet)
	}
}
