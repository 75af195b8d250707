package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vovanwin/flagdefaults/internal/catalog"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [PATTERN]",
		Short: "Разобрать Swift файлы с флагами и записать каталог",
		Long: `Находит файлы по шаблону (например "**/*FeatureFlag.swift") и собирает
каталог {перечисление: [{key, default_value, type}]}. Без --output каталог
печатается в stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args)
		},
	}

	cmd.Flags().StringP("output", "o", "", "файл каталога")
	cmd.Flags().String("root", ".", "корень обхода")
	cmd.Flags().String("format", "json", "формат каталога: json или yaml")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	pattern := a.cfg.Pattern
	if len(args) > 0 {
		pattern = args[0]
	}
	root := stringFlag(cmd.Flags(), "root", a.cfg.Root)
	output := stringFlag(cmd.Flags(), "output", a.cfg.Output)

	formatName := stringFlag(cmd.Flags(), "format", a.cfg.Format)
	if output != "" && !cmd.Flags().Changed("format") {
		formatName = string(catalog.FormatFromPath(output))
	}
	format, err := catalog.ParseFormat(formatName)
	if err != nil {
		return err
	}

	res, err := catalog.Scan(root, pattern)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		log.WithError(err).Warn("часть файлов не разобрана")
	}

	if output == "" {
		return catalog.Encode(cmd.OutOrStdout(), res.Snapshot(), format)
	}

	if err := catalog.WriteFile(output, res.Snapshot(), format); err != nil {
		return err
	}
	for _, f := range res.Files {
		fmt.Fprintf(cmd.ErrOrStderr(), "  ✓ %s\n", f)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "\n✓ Каталог записан: %s\n", output)
	return nil
}
