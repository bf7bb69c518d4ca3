package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds settings read from the config file, FILEQUERY_* env vars
// and persistent flags.
type config struct {
	Workers   int                 `mapstructure:"workers"`
	Progress  bool                `mapstructure:"progress"`
	FileTypes map[string][]string `mapstructure:"filetypes"`
	Log       struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`
}

// app carries state shared by subcommands once the root command initialized it.
type app struct {
	v          *viper.Viper
	cfg        config
	logger     *logrus.Logger
	noProgress bool
}

// newRootCmd creates the root command with its subcommands.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logrus.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "filequery",
		Short:         "Query files by type, extension and size",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup(cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.filequery.yaml or ./.filequery.yaml)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "Output logs in JSON format")
	pf.IntP("workers", "w", runtime.NumCPU(), "Number of parallel probe workers")
	pf.BoolVar(&a.noProgress, "no-progress", false, "Disable progress output")

	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log.json", pf.Lookup("log-json"))
	_ = a.v.BindPFlag("workers", pf.Lookup("workers"))
	a.v.SetDefault("progress", true)

	root.AddCommand(newQueryCmd(a), newTypesCmd(a))
	return root
}

// setup reads configuration and sets up logging.
func (a *app) setup(cfgFile string) error {
	a.v.SetEnvPrefix("filequery")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".filequery")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	return setupLogger(a.logger, a.cfg.Log.Level, a.cfg.Log.JSON)
}
