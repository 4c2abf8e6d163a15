package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/store"
	"github.com/sandeepkv93/listd/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	program := tea.NewProgram(update.NewModelWithConfig(store.New(), cfg))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "listd failed: %v\n", err)
		os.Exit(1)
	}
}
