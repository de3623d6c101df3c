package chat

// Package chat implements the rule-based coffee bot. Rules are checked in
// a fixed priority order and the first match wins, even when a message
// mentions several categories.

import "strings"

// Response is a bot reply plus quick-action suggestion labels.
type Response struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type rule struct {
	keywords []string
	response Response
}

// rules are ordered by priority: greeting, espresso, filter, capsules,
// help. Reordering changes which reply wins for mixed messages.
var rules = []rule{
	{
		keywords: []string{"start", "hello", "hi"},
		response: Response{
			Reply:       "Hey 👋 I’m your coffee bot. Espresso, filter, or capsules today?",
			Suggestions: []string{"Espresso", "Filter", "Capsules"},
		},
	},
	{
		keywords: []string{"espresso"},
		response: Response{
			Reply:       "Nice, espresso! I recommend our Espresso Roast 1kg. Type 'filter' or 'capsules' if you want to see other options.",
			Suggestions: []string{"Filter", "Capsules"},
		},
	},
	{
		keywords: []string{"filter", "v60", "chemex"},
		response: Response{
			Reply:       "For filter coffee, our Light Roast is perfect. You can also ask about 'espresso' or 'capsules'.",
			Suggestions: []string{"Espresso", "Capsules"},
		},
	},
	{
		keywords: []string{"capsule", "capsules", "pods"},
		response: Response{
			Reply:       "We have Nespresso-compatible capsules in Classic and Intense. Want 'espresso' or 'filter' beans too?",
			Suggestions: []string{"Espresso", "Filter"},
		},
	},
	{
		keywords: []string{"help", "how", "order"},
		response: Response{
			Reply:       "Tell me what you like (espresso/filter/capsules) and I’ll recommend something. Later we’ll add checkout so you can buy directly here.",
			Suggestions: []string{"Espresso", "Filter", "Capsules"},
		},
	},
}

var fallback = Response{
	Reply:       "Got it! Tell me if you want espresso, filter, or capsules.",
	Suggestions: []string{},
}

// Respond matches a message against the rule table.
func Respond(message string) Response {
	text := strings.ToLower(strings.TrimSpace(message))

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(text, keyword) {
				return r.response
			}
		}
	}

	return fallback
}
