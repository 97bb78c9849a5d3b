package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/services"
)

// CostReportCmd creates the cost-report command: weekly cost bands and budget
// variance for one centre.
func CostReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost-report",
		Short: "Weekly cost summary for a centre",
		RunE: func(cmd *cobra.Command, args []string) error {
			centreID, _ := cmd.Flags().GetString("centre")
			weekOf, _ := cmd.Flags().GetString("week")
			budget, _ := cmd.Flags().GetFloat64("budget")

			req := services.CostReportRequest{
				CentreID:       centreID,
				WeekOf:         weekOf,
				BudgetOverride: budget,
				FallbackBudget: app.Cfg.DefaultWeeklyBudget,
			}

			report, err := services.CostReport(app.Ctx, app.Store, app.Logger, req)
			if err != nil {
				return err
			}

			s := report.Summary
			fmt.Printf("Cost report %s: %s to %s\n", report.ID, report.From, report.To)
			fmt.Printf("  Regular   %10.0f\n", s.RegularCost)
			fmt.Printf("  Overtime  %10.0f\n", s.OvertimeCost)
			fmt.Printf("  Total     %10.0f  (budget %.0f, variance %+.0f, %.0f%% used)\n",
				s.TotalCost, report.Budget, s.Variance, s.PercentUsed)
			fmt.Printf("  Agency    %10.0f  (billed separately)\n", s.AgencyCost)
			fmt.Printf("  Hours     %10.1f across %d staff\n", s.TotalHours, s.StaffCount)
			if s.IsOverBudget {
				fmt.Println("  OVER BUDGET")
			} else if s.IsNearBudget {
				fmt.Println("  Near budget")
			}

			return nil
		},
	}

	cmd.Flags().String("centre", "", "Centre ID")
	cmd.Flags().String("week", "", "Any date in the week to report (yyyy-mm-dd)")
	cmd.Flags().Float64("budget", 0, "Override the stored weekly budget")
	cmd.MarkFlagRequired("centre")
	cmd.MarkFlagRequired("week")

	return cmd
}
