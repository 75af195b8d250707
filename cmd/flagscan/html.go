package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovanwin/flagdefaults/internal/render"
)

func newHTMLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Сгенерировать index.html с каталогом флагов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := render.Options{
				Template:  stringFlag(cmd.Flags(), "input", a.cfg.HTML.Template),
				OutputDir: stringFlag(cmd.Flags(), "output", ""),
				FlagsPath: stringFlag(cmd.Flags(), "flags", ""),
				Repo:      stringFlag(cmd.Flags(), "repo", a.cfg.HTML.Repo),
			}
			if opts.Repo == "" {
				return fmt.Errorf("не задан --repo")
			}

			out, err := render.Page(opts)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Сгенерировано: %s\n", out)
			return nil
		},
	}

	cmd.Flags().String("input", "", "шаблон HTML (по умолчанию встроенный)")
	cmd.Flags().String("output", "", "директория для index.html")
	cmd.Flags().String("flags", "", "путь к каталогу относительно --output")
	cmd.Flags().String("repo", "", "имя репозитория GitHub (owner/name)")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("flags")
	return cmd
}
