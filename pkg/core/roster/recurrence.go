package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ShiftTemplate defines a recurring shift pattern. Expansion turns it into
// concrete Shift values so recurring rosters are evaluated exactly like
// hand-placed ones.
type ShiftTemplate struct {
	ID           string      `json:"id"`
	StaffID      string      `json:"staffId"`
	CentreID     string      `json:"centreId"`
	RoomID       string      `json:"roomId"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	BreakMinutes int         `json:"breakMinutes"`
	Status       ShiftStatus `json:"status"`

	// RRule is an RFC 5545 recurrence rule (e.g. "FREQ=WEEKLY;BYDAY=MO,WE").
	RRule string `json:"rrule"`
}

// ExpandTemplate generates the shifts a template produces between from and to,
// both inclusive calendar days in DateLayout. Shift IDs are deterministic
// (template ID + date) so re-expanding an unchanged template yields identical
// shifts and downstream conflict dedup holds.
func ExpandTemplate(tmpl ShiftTemplate, from, to string) ([]Shift, error) {
	fromDay, err := time.Parse(DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: range start %q", ErrInvalidDate, from)
	}
	toDay, err := time.Parse(DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: range end %q", ErrInvalidDate, to)
	}

	rule, err := rrule.StrToRRule(tmpl.RRule)
	if err != nil {
		return nil, fmt.Errorf("template %s has invalid rrule: %w", tmpl.ID, err)
	}

	// Anchor the rule at the start of the range so expansion is stable
	// regardless of when the template was created.
	rule.DTStart(fromDay)

	var shifts []Shift
	for _, day := range rule.Between(fromDay, toDay, true) {
		date := day.Format(DateLayout)
		shifts = append(shifts, Shift{
			ID:           fmt.Sprintf("%s:%s", tmpl.ID, date),
			StaffID:      tmpl.StaffID,
			CentreID:     tmpl.CentreID,
			RoomID:       tmpl.RoomID,
			Date:         date,
			StartTime:    tmpl.StartTime,
			EndTime:      tmpl.EndTime,
			BreakMinutes: tmpl.BreakMinutes,
			Status:       tmpl.Status,
		})
	}

	return shifts, nil
}

// ExpandTemplates expands every template over the same range and concatenates
// the results in template order.
func ExpandTemplates(templates []ShiftTemplate, from, to string) ([]Shift, error) {
	var shifts []Shift
	for _, tmpl := range templates {
		expanded, err := ExpandTemplate(tmpl, from, to)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, expanded...)
	}
	return shifts, nil
}
