package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/strategy"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Browse the difficulty levels",
}

var levelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels with their strategies and number ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := levels.Catalog()

		fmt.Printf("%-5s  %-16s  %-28s  %-32s  %s\n",
			"Level", "Name", "Strategies", "Tagline", "Operations")
		fmt.Println(strings.Repeat("─", 100))

		for _, lvl := range catalog {
			var names []string
			for _, s := range lvl.Strategies() {
				names = append(names, s.DisplayName())
			}
			var ops []string
			for _, op := range strategy.AllOperations() {
				if len(lvl.ProfilesFor(op)) > 0 {
					ops = append(ops, string(op))
				}
			}

			tagline := lvl.Tagline
			if len(tagline) > 32 {
				tagline = tagline[:29] + "..."
			}
			fmt.Printf("%-5d  %-16s  %-28s  %-32s  %s\n",
				lvl.Number, lvl.Name,
				strings.Join(names, ", "), tagline,
				strings.Join(ops, ", "))
		}

		fmt.Printf("\n%d levels\n", len(catalog))
		return nil
	},
}

func init() {
	levelCmd.AddCommand(levelListCmd)
}
