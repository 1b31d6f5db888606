package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"furnishing-helper/feature/requirements"

	"github.com/spf13/cobra"
)

var requirementsJSON bool

// requirementsCmd prints what a user still needs to claim their sets.
var requirementsCmd = &cobra.Command{
	Use:   "requirements <user-id>",
	Short: "Show the furnishings and materials a user still needs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		res, err := svc.requirements.Compute(cmd.Context(), args[0], nil)
		if err != nil {
			return fmt.Errorf("failed to compute requirements: %w", err)
		}

		if requirementsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Print(requirements.Render(res))
		return nil
	},
}

func init() {
	requirementsCmd.Flags().BoolVar(&requirementsJSON, "json", false, "Print the result as JSON")
	RootCmd.AddCommand(requirementsCmd)
}
