package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovanwin/flagdefaults/internal/catalog"
	"github.com/vovanwin/flagdefaults/internal/generator"
	"github.com/vovanwin/flagdefaults/internal/model"
	"github.com/vovanwin/flagdefaults/internal/parser"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Сгенерировать Go реестр значений по умолчанию",
		Long: `Строит flagsgen_registry.go из Swift перечислений (--source) или
из flags.toml (--toml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGen(cmd)
		},
	}

	cmd.Flags().String("source", "", "шаблон Swift файлов (по умолчанию pattern из настроек)")
	cmd.Flags().String("toml", "", "flags.toml вместо Swift файлов")
	cmd.Flags().String("root", ".", "корень обхода для --source")
	cmd.Flags().String("output", ".", "директория для генерации")
	cmd.Flags().String("package", "featureflags", "имя пакета")
	return cmd
}

func (a *app) runGen(cmd *cobra.Command) error {
	flags := cmd.Flags()
	opts := generator.Options{
		OutputDir:   stringFlag(flags, "output", a.cfg.Gen.Output),
		PackageName: stringFlag(flags, "package", a.cfg.Gen.Package),
	}

	var groups []*model.Group
	if tomlPath, _ := flags.GetString("toml"); tomlPath != "" {
		parsed, err := parser.ParseFlagsFile(tomlPath)
		if err != nil {
			return err
		}
		if groups, err = parser.Merge(parsed...); err != nil {
			return err
		}
		fmt.Printf("  ✓ %s\n", tomlPath)
	} else {
		res, err := catalog.Scan(stringFlag(flags, "root", a.cfg.Root), stringFlag(flags, "source", a.cfg.Pattern))
		if err != nil {
			return err
		}
		// Генерировать из неполного каталога нельзя
		if err := res.Err(); err != nil {
			return err
		}
		for _, f := range res.Files {
			fmt.Printf("  ✓ %s\n", f)
		}
		groups = res.Groups
	}

	if err := generator.Generate(opts, groups); err != nil {
		return err
	}
	fmt.Printf("\n✓ Сгенерировано: %s/%s\n", opts.OutputDir, generator.OutputFile)
	return nil
}
