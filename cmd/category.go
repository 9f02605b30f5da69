package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage task categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, _ := cmd.Flags().GetString("color")

		return withApp(cmd.Context(), func(a *app) error {
			category, err := a.services.Categories.Add(cmd.Context(), a.cfg.OwnerID, args[0], color)
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (%s) %s\n", category.Name, category.Color, category.ID)
			return nil
		})
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in creation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			categories, err := a.services.Categories.List(cmd.Context(), a.cfg.OwnerID)
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Println("No categories.")
				return nil
			}
			for _, c := range categories {
				fmt.Printf("  %s  %s  %s\n", c.ID, c.Color, c.Name)
			}
			return nil
		})
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete [category-id]",
	Short: "Delete a category no task refers to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			if err := a.services.Categories.Delete(cmd.Context(), a.cfg.OwnerID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted category %s\n", args[0])
			return nil
		})
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)

	categoryAddCmd.Flags().String("color", "", "Hex color, e.g. #e74c3c")

	rootCmd.AddCommand(categoryCmd)
}
