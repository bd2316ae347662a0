package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the admin account",
}

var adminSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Set the admin name and password, replacing any existing admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		password, err := readPassword("admin password")
		if err != nil {
			return err
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.API.Admin.SetAdmin(cmd.Context(), name, password); err != nil {
			return fmt.Errorf("failed to set admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin '%s' saved\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminSetCmd)
}
