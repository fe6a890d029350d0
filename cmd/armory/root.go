package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/randalmurphal/armory/pkg/armory"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config keys, also usable as ARMORY_* environment variables.
const (
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyTrace     = "trace"
)

// app carries state shared by subcommands for one invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logger   *slog.Logger
	tracing  bool
	shutdown func(context.Context) error
}

func newRootCmd(version string) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "armory",
		Short:             "Clone and register weapon-type prototypes",
		Long:              `armory forges weapon types by cloning a root prototype and keeps them in a named registry.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (yaml, json or toml)")
	root.PersistentFlags().String(keyLogLevel, "warn",
		"log level: debug, info, warn, error")
	root.PersistentFlags().String(keyLogFormat, "text",
		"log format: text or json")
	root.PersistentFlags().Bool(keyTrace, false,
		"print OpenTelemetry spans to stderr")

	root.AddCommand(newDemoCmd(a), newLoadCmd(a))
	return root
}

// setup resolves configuration and builds the logger and tracer provider.
// Precedence: flags, ARMORY_* environment, config file, defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("armory")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger

	a.tracing = a.v.GetBool(keyTrace)
	if a.tracing {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(cmd.ErrOrStderr()),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return fmt.Errorf("create stdout exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(resource.NewSchemaless(
				attribute.String("service.name", "armory"),
			)),
		)
		otel.SetTracerProvider(tp)
		a.shutdown = tp.Shutdown
	}
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}
	return nil
}

// newArmory builds an Armory wired to the resolved logger and tracing setting.
func (a *app) newArmory() *armory.Armory {
	return armory.New(
		armory.WithLogger(a.logger),
		armory.WithTracing(a.tracing),
	)
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: want text or json", format)
	}
}
