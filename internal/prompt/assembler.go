// README: Builds the fixed-order system/user instruction pair for itinerary generation.
package prompt

import (
	"fmt"
	"strings"

	"tripplanner/internal/trip"
)

const systemInstruction = "You are a helpful AI travel planner."

// Prompt is a fully-assembled instruction pair, consumed exactly once per run.
type Prompt struct {
	System string
	User   string
}

const userTemplate = `Plan a %d-day trip to %s.
Budget: %s.
Traveler interests: %s.

IMPORTANT:
1. First, clearly display the WEATHER DATA provided: %s.
2. Then, clearly display the FLIGHT OPTIONS provided: %s.
3. After that, suggest a day-by-day itinerary (activities, attractions, food, culture).
Make sure weather and flight info are visible in the final answer.`

// Assemble composes the prompt in its fixed order. The weather summary and each
// flight line are embedded verbatim; downstream checks that the model surfaced
// the tool data depend on those exact substrings.
func Assemble(req trip.Request, weatherSummary string, flightLines []string) Prompt {
	return Prompt{
		System: systemInstruction,
		User: fmt.Sprintf(userTemplate,
			req.Days,
			req.Destination,
			req.Budget,
			req.InterestsText(),
			weatherSummary,
			strings.Join(flightLines, ", ")),
	}
}
