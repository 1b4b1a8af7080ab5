package pipeline

import (
	"strings"
	"unicode"

	"github.com/guidesmith/guidesmith/internal/guide"
)

// Scaffolder builds the last-resort guide used when generation fails
// entirely. Prefixes lists the question openers stripped before the title
// is rebuilt; it is a field so deployments with differently phrased
// questions can swap the list.
type Scaffolder struct {
	Prefixes []string
}

// NewScaffolder returns a scaffolder with the default English question
// prefixes.
func NewScaffolder() Scaffolder {
	return Scaffolder{Prefixes: []string{"How do I", "How to"}}
}

// Build produces a minimal single-step guide so the document still
// renders when no model output is available.
func (s Scaffolder) Build(question string) guide.Guide {
	return guide.Guide{
		Title:       s.title(question),
		Description: "This guide was generated without full context (fallback mode).",
		Steps: []guide.Step{{
			Number:              1,
			Title:               "Start with the basics",
			Action:              "Break the task into small, verifiable steps.",
			Why:                 "Smaller steps reduce errors and make progress visible.",
			Check:               "You can confirm each step independently.",
			IllustrationCaption: "Show the first action on screen.",
		}},
		ProTip:          "Add more details as you iterate.",
		Troubleshooting: []guide.TroubleshootingEntry{},
		Safety:          []string{},
		Abstain:         false,
	}
}

// title rewrites the question as a guide title: known prefixes are
// stripped and the remainder recast as "How to <rest>".
func (s Scaffolder) title(question string) string {
	pretty := strings.TrimSpace(question)
	for _, p := range s.Prefixes {
		if strings.HasPrefix(pretty, p) {
			pretty = strings.TrimSpace(pretty[len(p):])
		}
	}
	if pretty == "" {
		return "How-To Guide"
	}
	return "How to " + capitalize(pretty)
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
