package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/services"
)

// AuditRosterCmd creates the audit command: evaluate every shift at a centre
// for one week and print the deduplicated conflict set.
func AuditRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit a centre's roster for one week",
		RunE: func(cmd *cobra.Command, args []string) error {
			centreID, _ := cmd.Flags().GetString("centre")
			weekOf, _ := cmd.Flags().GetString("week")

			req := services.AuditRequest{
				CentreID:       centreID,
				WeekOf:         weekOf,
				ExtraTemplates: overlayTemplates(app, centreID),
			}

			report, err := services.AuditRoster(app.Ctx, app.Store, app.Logger, req)
			if err != nil {
				return err
			}

			fmt.Printf("Audit %s: %s to %s, %d shifts, %d conflicts\n",
				report.ID, report.From, report.To, report.ShiftCount, len(report.Conflicts))
			for t, n := range report.CountsByType {
				fmt.Printf("  %-22s %d\n", t, n)
			}
			for _, c := range report.Conflicts {
				fmt.Printf("[%-7s] %s: %s\n", c.Severity, c.Type, c.Message)
			}

			return nil
		},
	}

	cmd.Flags().String("centre", "", "Centre ID")
	cmd.Flags().String("week", "", "Any date in the week to audit (yyyy-mm-dd)")
	cmd.MarkFlagRequired("centre")
	cmd.MarkFlagRequired("week")

	return cmd
}

// overlayTemplates converts the configured template overlays for a centre into
// roster templates.
func overlayTemplates(app *AppContext, centreID string) []roster.ShiftTemplate {
	var templates []roster.ShiftTemplate
	for _, o := range app.Cfg.TemplateOverlays {
		if o.CentreID != centreID {
			continue
		}
		templates = append(templates, roster.ShiftTemplate{
			ID:           o.ID,
			StaffID:      o.StaffID,
			CentreID:     o.CentreID,
			RoomID:       o.RoomID,
			StartTime:    o.StartTime,
			EndTime:      o.EndTime,
			BreakMinutes: o.BreakMinutes,
			Status:       roster.ShiftScheduled,
			RRule:        o.RRule,
		})
	}
	return templates
}
