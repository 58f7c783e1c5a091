package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/todolist/internal/tui"
	"github.com/amonks/todolist/store"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return tui.Run(store.New(db))
	},
}
