package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tohsaka888/societies-server/internal/api/util"
	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

var signUpsCompetition string

var signUpsCmd = &cobra.Command{
	Use:   "signups",
	Short: "Inspect competition sign-ups",
}

var signUpsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sign-up records",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		filter := repository.SignUpFilter{ListFilter: util.ListFilter{Page: 1}}
		if signUpsCompetition != "" {
			filter.Filters = []util.QueryFilter{{
				Field:    "competition_id",
				Operator: util.OpEq,
				Value:    signUpsCompetition,
			}}
		}

		signUps, _, err := services.API.SignUp.ListSignUps(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("failed to list sign-ups: %w", err)
		}

		if len(signUps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sign-ups found")
			return nil
		}

		return writeSignUps(cmd.OutOrStdout(), signUps)
	},
}

func writeSignUps(out io.Writer, signUps []*domain.SignUp) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tCOMPETITION ID\tCOMPETITION\tCOLLEGE\tCLASS\tSIGNED UP AT")
	for _, s := range signUps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Username,
			s.CompetitionID,
			s.Competition,
			s.College,
			s.ClassID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func init() {
	signUpsListCmd.Flags().StringVar(&signUpsCompetition, "competition", "", "only show sign-ups for this competition id")

	rootCmd.AddCommand(signUpsCmd)
	signUpsCmd.AddCommand(signUpsListCmd)
}
