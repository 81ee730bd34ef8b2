package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ardeearam/coins-ph-go/exchange/coins"
	"github.com/ardeearam/coins-ph-go/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "COINS"

// cli holds the command tree and the layered configuration (flags, then COINS_* environment
// variables, then an optional config file).
type cli struct {
	root   *cobra.Command
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer

	cfgFile string
	log     *zap.Logger
}

func newCli(out io.Writer, errOut io.Writer) *cli {
	c := &cli{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		log:    zap.NewNop(),
	}

	c.root = &cobra.Command{
		Use:           "coins",
		Short:         "Signed access to the coins.ph REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}

	c.root.SetOut(out)
	c.root.SetErr(errOut)

	fs := c.root.PersistentFlags()
	fs.StringVar(&c.cfgFile, "config", "", "Config file (default $HOME/.coins.{toml,yaml,json})")
	fs.String("key", "", "API key")
	fs.String("secret", "", "API secret")
	fs.String("host", coins.DefaultHost, "API host")
	fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	fs.String("log-format", "console", "Log format (console, json)")
	fs.Bool("no-color", false, "Disable coloured output")

	for _, name := range []string{"key", "secret", "host", "log-level", "log-format", "no-color"} {
		_ = c.v.BindPFlag(name, fs.Lookup(name))
	}

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.root.AddCommand(
		newCallCommand(c),
		newRoutesCommand(c),
		newSignCommand(c),
	)

	return c
}

// load reads the config file (if any) and builds the logger.
func (c *cli) load() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			c.v.AddConfigPath(home)
		}

		c.v.SetConfigName(".coins")
	}

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	log, err := logging.New(logging.Config{
		Level:    c.v.GetString("log-level"),
		Encoding: c.v.GetString("log-format"),
	})
	if err != nil {
		return err
	}

	c.log = log

	if used := c.v.ConfigFileUsed(); used != "" {
		c.log.Debug("loaded config file", zap.String("path", used))
	}

	return nil
}

func (c *cli) client() *coins.Client {
	return coins.NewClient(
		c.v.GetString("key"),
		c.v.GetString("secret"),
		coins.WithHost(c.v.GetString("host")),
		coins.WithLogger(c.log.Named("coins")),
	)
}

// signalContext is cancelled on interrupt, which aborts an in-flight request at the transport.
func (c *cli) signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
