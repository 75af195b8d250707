package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovanwin/flagdefaults/internal/config"
)

// app общее состояние команд: загруженные настройки
type app struct {
	configFile string
	logLevel   string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "flagscan",
		Short:         "flagscan - каталог feature flags из Swift перечислений",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", config.DefaultFile, "файл настроек")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "уровень логирования (debug, info, warn, error)")

	root.AddCommand(
		newParseCmd(a),
		newHTMLCmd(a),
		newGenCmd(a),
		newWatchCmd(a),
		newInitCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		File:      a.configFile,
		Required:  cmd.Flags().Changed("config"),
		EnableEnv: true,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("уровень логирования: %w", err)
	}
	log.SetLevel(lvl)

	switch cfg.Log.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return nil
}

// stringFlag возвращает значение флага, если он задан явно, иначе значение из настроек
func stringFlag(flags *pflag.FlagSet, name, fromConfig string) string {
	if flags.Changed(name) || fromConfig == "" {
		v, _ := flags.GetString(name)
		return v
	}
	return fromConfig
}
