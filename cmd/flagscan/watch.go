package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vovanwin/flagdefaults/internal/catalog"
	"github.com/vovanwin/flagdefaults/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [PATTERN]",
		Short: "Пересобирать каталог при изменении Swift файлов",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := a.cfg.Pattern
			if len(args) > 0 {
				pattern = args[0]
			}
			root := stringFlag(cmd.Flags(), "root", a.cfg.Root)
			output := stringFlag(cmd.Flags(), "output", a.cfg.Output)
			if output == "" {
				output = "flags.json"
			}

			rebuild := func(context.Context) error {
				res, err := catalog.Scan(root, pattern)
				if err != nil {
					return err
				}
				if err := res.Err(); err != nil {
					log.WithError(err).Warn("часть файлов не разобрана")
				}
				if err := catalog.WriteFile(output, res.Snapshot(), catalog.FormatFromPath(output)); err != nil {
					return err
				}
				log.WithFields(log.Fields{"output": output, "groups": len(res.Groups)}).Info("каталог обновлён")
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := rebuild(ctx); err != nil {
				log.WithError(err).Error("первичная сборка каталога")
			}

			scanner := &catalog.Scanner{Root: root, Pattern: pattern}
			w := &watch.Watcher{
				Root:     root,
				Match:    scanner.Matches,
				OnChange: rebuild,
				Logger:   log.StandardLogger(),
			}
			log.WithFields(log.Fields{"root": root, "pattern": pattern}).Info("наблюдение запущено")
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringP("output", "o", "", "файл каталога")
	cmd.Flags().String("root", ".", "корень обхода")
	return cmd
}
