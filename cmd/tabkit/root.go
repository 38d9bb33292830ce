package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/tabkit"
	"github.com/bjaus/tabkit/internal/app"
	"github.com/bjaus/tabkit/internal/config"
	"github.com/bjaus/tabkit/internal/logger"
)

// cli holds the state shared by the command tree of one invocation.
type cli struct {
	configFilename string
	cfg            *config.Config
}

func execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		logger.Fatalf(ctx, "Command failed: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "tabkit",
		Short: "Convert, filter and render tabular data.",
		Long: `tabkit reads tables from delimited text or Parquet files and flat YAML
mappings, filters rows by column equality and renders the result as
delimited text, CSV, TSV, aligned text, Markdown, HTML, JSON, JSONL, YAML,
ENV, a plain list, a Go template or Parquet.

Input is read from the file argument, or from stdin when it is omitted or '-'.
Output goes to stdout unless --output names a file; a .parquet extension on
either side switches to Parquet.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initConfig,
	}

	flags := root.PersistentFlags()

	flags.StringVarP(
		&c.configFilename,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')", config.DefaultConfigFilename))

	flags.StringP(
		"delimiter",
		"d",
		"",
		fmt.Sprintf("field delimiter of delimited input and output (default '%s')", config.DefaultDelimiter))

	flags.StringP(
		"format",
		"f",
		"",
		fmt.Sprintf("output format: %v, delimited=<sep> or go-template=<tmpl> (default delimited text)",
			tabkit.Formats()))

	flags.StringP(
		"output",
		"o",
		"",
		"output file; '-' or empty writes to stdout")

	flags.String(
		"log-level",
		"",
		fmt.Sprintf("log level: debug, info, warn or error (default '%s')", config.DefaultLogLevel))

	root.AddCommand(
		c.newConvertCommand(),
		c.newFilterCommand(),
		c.newFindCommand(),
		c.newMappingCommand(),
	)

	return root
}

func (c *cli) initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(c.configFilename)
	if err != nil {
		return err
	}

	if err = bindFlagsToConfig(cmd.Flags(), cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	c.cfg = cfg

	return nil
}

// bindFlagsToConfig lets explicitly set flags override file and environment
// settings, then validates the result.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("delimiter"); flag != nil && flag.Changed {
		cfg.Delimiter, _ = flags.GetString("delimiter")
	}

	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		cfg.Format, _ = flags.GetString("format")
	}

	if flag := flags.Lookup("key-name"); flag != nil && flag.Changed {
		cfg.KeyName, _ = flags.GetString("key-name")
	}

	if flag := flags.Lookup("value-name"); flag != nil && flag.Changed {
		cfg.ValueName, _ = flags.GetString("value-name")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}

func (c *cli) runner(cmd *cobra.Command) *app.Runner {
	return app.NewRunner(c.cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

func commandContext(cmd *cobra.Command) context.Context {
	return logger.WithKV(cmd.Context(), "command", cmd.Name())
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return app.StdStream
	}

	return args[0]
}

func outputFlag(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString("output")

	return output
}
