package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Short:   "Manage categories",
	Aliases: []string{"cat"},
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List categories with their todo counts",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runCategoryList,
}

var categoryListJSON bool

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryAddColor string

var categoryRmCmd = &cobra.Command{
	Use:     "rm <name-or-id>",
	Short:   "Delete a category, moving its todos to the fallback category",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoryRm,
}

func init() {
	categoryCmd.AddCommand(categoryListCmd, categoryAddCmd, categoryRmCmd)

	categoryListCmd.Flags().BoolVar(&categoryListJSON, "json", false, "Output as JSON")
	categoryAddCmd.Flags().StringVar(&categoryAddColor, "color", "#6B7280", "Hex color for frontends")
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	categories, err := db.Categories()
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if categoryListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(categories)
	}

	printCategoryTable(categories)
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])

	db, err := openDatabase()
	if err != nil {
		return err
	}

	created, err := db.AddCategory(name, categoryAddColor)
	if err != nil {
		return err
	}

	fmt.Printf("Added category %s\n", created.Name)
	return nil
}

func runCategoryRm(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	id, name, err := resolveCategory(db, args[0])
	if err != nil {
		return err
	}

	removed, err := db.DeleteCategory(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("category not found: %s", args[0])
	}

	fmt.Printf("Deleted category %s; its todos moved to %s\n", name, db.FallbackCategory())
	return nil
}
