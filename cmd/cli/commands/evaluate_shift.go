package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/services"
)

// EvaluateShiftCmd creates the evaluate command: check one candidate shift
// against the roster and print every rule violation.
func EvaluateShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a candidate shift for scheduling conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			candidate, err := readShift(cmd, file)
			if err != nil {
				return err
			}

			result, err := services.EvaluateShift(app.Ctx, app.Store, app.Logger, candidate)
			if err != nil {
				return err
			}

			if len(result.Conflicts) == 0 {
				fmt.Println("No conflicts.")
				return nil
			}

			for _, c := range result.Conflicts {
				marker := "WARN "
				if !c.CanOverride {
					marker = "BLOCK"
				} else if c.Severity == "error" {
					marker = "ERROR"
				}
				fmt.Printf("[%s] %s: %s\n", marker, c.Type, c.Message)
			}
			if result.Blocking {
				fmt.Println("\nThis shift cannot be saved: non-overridable conflicts present.")
			}

			return nil
		},
	}

	cmd.Flags().String("file", "", "Path to a JSON file describing the candidate shift")
	cmd.Flags().String("id", "", "Shift ID")
	cmd.Flags().String("staff", "", "Staff member ID")
	cmd.Flags().String("centre", "", "Centre ID")
	cmd.Flags().String("room", "", "Room ID")
	cmd.Flags().String("date", "", "Shift date (yyyy-mm-dd)")
	cmd.Flags().String("start", "", "Start time (HH:MM)")
	cmd.Flags().String("end", "", "End time (HH:MM)")
	cmd.Flags().Int("break", 0, "Unpaid break in minutes")

	return cmd
}

// readShift builds the candidate from a JSON file when given, otherwise from
// the individual flags.
func readShift(cmd *cobra.Command, file string) (roster.Shift, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return roster.Shift{}, fmt.Errorf("failed to read shift file: %w", err)
		}
		var s roster.Shift
		if err := json.Unmarshal(data, &s); err != nil {
			return roster.Shift{}, fmt.Errorf("failed to parse shift file: %w", err)
		}
		return s, nil
	}

	s := roster.Shift{Status: roster.ShiftScheduled}
	s.ID, _ = cmd.Flags().GetString("id")
	s.StaffID, _ = cmd.Flags().GetString("staff")
	s.CentreID, _ = cmd.Flags().GetString("centre")
	s.RoomID, _ = cmd.Flags().GetString("room")
	s.Date, _ = cmd.Flags().GetString("date")
	s.StartTime, _ = cmd.Flags().GetString("start")
	s.EndTime, _ = cmd.Flags().GetString("end")
	s.BreakMinutes, _ = cmd.Flags().GetInt("break")

	if s.StaffID == "" || s.CentreID == "" || s.Date == "" || s.StartTime == "" || s.EndTime == "" {
		return roster.Shift{}, fmt.Errorf("either --file or --staff, --centre, --date, --start and --end are required")
	}

	return s, nil
}
