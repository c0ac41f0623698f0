package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agriprofit/transport-compare/internal/compare"
	"github.com/agriprofit/transport-compare/internal/config"
	"github.com/agriprofit/transport-compare/internal/mandi"
	"github.com/agriprofit/transport-compare/pkg/constants"
	"github.com/agriprofit/transport-compare/pkg/output"
	"github.com/agriprofit/transport-compare/pkg/units"
	"github.com/agriprofit/transport-compare/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", "", "path to configuration file (defaults apply when omitted)")
	commodity := flag.String("commodity", "", "commodity to sell, e.g. wheat")
	quantity := flag.Float64("quantity", 0, "quantity to sell")
	unitFlag := flag.String("unit", "kg", "quantity unit: kg, quintal, or ton")
	sourceState := flag.String("state", "", "source state")
	sourceDistrict := flag.String("district", "", "source district")
	mandiAPI := flag.String("mandi-api", "", "base URL of the mandi comparison API (overrides config; synthetic data when unset)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if err := validation.ValidateComparisonRequest(validation.ComparisonRequest{
		Commodity:      *commodity,
		Quantity:       *quantity,
		SourceState:    *sourceState,
		SourceDistrict: *sourceDistrict,
	}); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	unit, err := units.Parse(*unitFlag)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}
	quantityKg, err := units.ToKg(*quantity, unit)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	req := compare.Request{
		Commodity:      *commodity,
		QuantityKg:     quantityKg,
		SourceState:    *sourceState,
		SourceDistrict: *sourceDistrict,
	}

	baseURL := conf.Upstream.BaseURL
	if *mandiAPI != "" {
		baseURL = *mandiAPI
	}

	var fetch compare.CandidateFetcher
	if baseURL != "" {
		client := mandi.NewClient(baseURL, time.Duration(conf.Upstream.TimeoutSeconds)*time.Second, logger)
		fetch = func(ctx context.Context) ([]compare.Candidate, error) {
			return client.FetchCandidates(ctx, req)
		}
	} else {
		source := mandi.NewSyntheticSource(logger)
		fetch = func(ctx context.Context) ([]compare.Candidate, error) {
			return source.FetchCandidates(ctx, req)
		}
	}

	session := compare.NewSession(logger)
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(conf.Upstream.TimeoutSeconds)*time.Second)
	defer cancel()

	results, err := session.Run(ctx, req, conf.Settings, fetch)
	if err != nil {
		logger.Fatal("failed to compute comparison",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results, compare.Summarize(results))
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
