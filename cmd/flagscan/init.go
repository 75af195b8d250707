package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovanwin/flagdefaults/internal/generator"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [DIR]",
		Short: "Создать flags.toml и .flagscan.toml",
		Args:  cobra.MaximumNArgs(1),
		// настройки для init не нужны
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			fmt.Printf("Инициализация в %s:\n", dir)
			return generator.Init(dir)
		},
	}
}
