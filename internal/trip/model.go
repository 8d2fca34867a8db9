// README: Trip request model shared by the HTTP layer, CLI, and planner service.
package trip

import "strings"

// Budget is the traveler's spending tier.
type Budget string

const (
	BudgetLow    Budget = "Low"
	BudgetMedium Budget = "Medium"
	BudgetHigh   Budget = "High"
)

// Request holds the trip parameters collected from the user. It is immutable
// once constructed; every pipeline run gets its own value.
type Request struct {
	Destination string
	Days        int
	Budget      Budget
	Interests   []string
}

// InterestsText renders the interest list for the prompt, falling back to the
// fixed default phrase when the user picked nothing.
func (r Request) InterestsText() string {
	if len(r.Interests) == 0 {
		return "general sightseeing"
	}
	return strings.Join(r.Interests, ", ")
}
