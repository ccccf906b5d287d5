package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// providersCmd represents the providers command
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available providers",
	Long:  `List the provider ids that profiles may reference.`,
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	for _, id := range registry.Providers() {
		fmt.Println(id)
	}
	return nil
}
