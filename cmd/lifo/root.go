package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tedmax100/lifo/internal/config"
	"github.com/tedmax100/lifo/internal/logging"
	"github.com/tedmax100/lifo/stack"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	v   *viper.Viper
	cfg config.Config
	log *logrus.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		v:      config.New(),
		log:    logging.New(stderr, "info", false),
	}
}

func (a *app) rootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "lifo",
		Short:         "Push input onto a bounded stack and print it back",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(a.v, configFile); err != nil {
				return err
			}
			if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(a.stderr, cfg.Log.Level, cfg.Log.JSON)
			a.log.WithFields(logrus.Fields{
				"capacity":     cfg.Capacity,
				"scale_factor": cfg.ScaleFactor,
				"max_size":     cfg.MaxSize,
			}).Debug("configuration loaded")
			return nil
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	pf.Int("capacity", stack.DefaultInitialCapacity, "initial stack capacity")
	pf.Float64("scale-factor", stack.DefaultScaleFactor, "growth multiplier, must be greater than 1")
	pf.Int("max-size", stack.DefaultMaxSize, "maximum number of elements")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "log as JSON")

	cmd.AddCommand(a.reverseCmd(), a.dumpCmd(), versionCmd())
	return cmd
}
