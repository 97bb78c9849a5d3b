package conflicts

import (
	"fmt"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/core/roster"
)

// Detect runs every rule over one candidate shift against the rest of the
// roster. The candidate is excluded from the comparison set by ID, so
// re-evaluating an edited shift never compares it with its own previous
// version. Results come back in rule evaluation order, unsorted by severity;
// OrderForDisplay is the presentation policy for callers that want sorting.
//
// A rule failure (malformed time, bad date, unknown staff) fails the whole
// evaluation for this candidate: the engine never swallows an error to return
// a partial result.
func Detect(candidate roster.Shift, allShifts []roster.Shift, staff []roster.StaffMember, rooms []roster.Room) ([]Conflict, error) {
	return detect(candidate, allShifts, staff, rooms, DefaultRules())
}

func detect(candidate roster.Shift, allShifts []roster.Shift, staff []roster.StaffMember, rooms []roster.Room, rules []Rule) ([]Conflict, error) {
	member, ok := roster.FindStaff(staff, candidate.StaffID)
	if !ok {
		return nil, fmt.Errorf("%w: %q referenced by shift %s", ErrUnknownStaff, candidate.StaffID, candidate.ID)
	}

	others := make([]roster.Shift, 0, len(allShifts))
	for _, s := range allShifts {
		if s.ID != candidate.ID {
			others = append(others, s)
		}
	}

	env := &Environment{
		Staff:       member,
		OtherShifts: others,
		Rooms:       rooms,
	}

	var found []Conflict
	for _, rule := range rules {
		conflicts, err := rule.Evaluate(candidate, env)
		if err != nil {
			return nil, fmt.Errorf("%s rule: %w", rule.Type(), err)
		}
		found = append(found, conflicts...)
	}

	return found, nil
}

// DetectAll audits a whole roster: every shift is evaluated as a candidate
// against the others, and the concatenated results are deduplicated by
// conflict ID. Pairwise conflicts (overlap, insufficient rest) carry the same
// ID from either shift's perspective, so the two sightings collapse to one
// record; the first sighting wins, which keeps the output order stable across
// repeated runs on the same input.
func DetectAll(shifts []roster.Shift, staff []roster.StaffMember, rooms []roster.Room) ([]Conflict, error) {
	rules := DefaultRules()

	seen := make(map[string]bool)
	var found []Conflict
	for _, candidate := range shifts {
		conflicts, err := detect(candidate, shifts, staff, rooms, rules)
		if err != nil {
			return nil, fmt.Errorf("evaluating shift %s: %w", candidate.ID, err)
		}
		for _, c := range conflicts {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			found = append(found, c)
		}
	}

	return found, nil
}
