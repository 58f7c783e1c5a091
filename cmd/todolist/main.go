// Package main implements the todolist CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amonks/todolist/internal/config"
	"github.com/amonks/todolist/internal/kv"
	"github.com/amonks/todolist/todo"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:           "todolist",
	Short:         "Track tasks with categories, tags, priorities, and due dates",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		editCmd,
		doneCmd,
		undoneCmd,
		rmCmd,
		toggleAllCmd,
		clearCmd,
		statsCmd,
		categoryCmd,
		dashCmd,
	)
}

// openDatabase builds the persistence engine from configuration.
func openDatabase() (*todo.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slots := kv.NewStore(cfg.DataDir)
	return todo.Open(slots, todo.Options{FallbackCategory: cfg.FallbackCategory}), nil
}
