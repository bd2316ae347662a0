package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tohsaka888/societies-server/internal/core/domain"
)

var (
	userPhone       string
	userClassID     string
	userCollege     string
	userScoreNumber string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var usersAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Register a new user",
	Long: `Register a new user exactly as POST /register does.

Usernames are not checked for uniqueness; when two accounts share a
username, login matches the one registered first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := readPassword("password")
		if err != nil {
			return err
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		profile, err := services.API.Auth.Register(cmd.Context(), domain.Registration{
			Username:    username,
			Password:    password,
			Phone:       userPhone,
			ClassID:     userClassID,
			College:     userCollege,
			ScoreNumber: userScoreNumber,
		})
		if err != nil {
			return fmt.Errorf("failed to register user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User '%s' registered with id %s\n", username, profile.ID)
		return nil
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&userPhone, "phone", "", "phone number")
	usersAddCmd.Flags().StringVar(&userClassID, "class-id", "", "class id")
	usersAddCmd.Flags().StringVar(&userCollege, "college", "", "college")
	usersAddCmd.Flags().StringVar(&userScoreNumber, "score-number", "", "student score number")

	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersAddCmd)
}
