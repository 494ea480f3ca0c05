package cli

import (
	"fmt"
	"strings"

	"github.com/leetkit-labs/leetkit/internal/layout"
	"github.com/spf13/cobra"
)

var layoutShowFile string

func init() {
	layoutShowCmd.Flags().StringVar(&layoutShowFile, "layout", "", "Layout file (default: the built-in layout)")
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutValidateCmd)
	rootCmd.AddCommand(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and validate scaffold layouts",
	Long:  `Show the topic and utility lists a build would use, or validate a layout file.`,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the difficulties, topics, and utilities of a layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := layout.Default()
		if layoutShowFile != "" {
			var err error
			lay, err = loadValidatedLayout(layoutShowFile)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Difficulties: %s\n", strings.Join(layout.Difficulties(), ", "))

		fmt.Printf("\nTopics (%d):\n", len(lay.Topics))
		for _, t := range lay.Topics {
			fmt.Printf("  %-22s %s\n", t, layout.DisplayName(t))
		}

		fmt.Printf("\nUtilities (%d):\n", len(lay.Utilities))
		for _, u := range lay.Utilities {
			fmt.Printf("  %s\n", u)
		}
		return nil
	},
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a layout file against the layout schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := loadValidatedLayout(path); err != nil {
			return err
		}
		fmt.Printf("%s is a valid layout.\n", path)
		return nil
	},
}
