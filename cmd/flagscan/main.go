package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n✗ Ошибка: %v\n", err)
		os.Exit(1)
	}
}
