// Package prompt builds the instruction text sent to the language model.
//
// Two variants exist: a grounded prompt that restricts the model to the
// retrieved passages (and tells it when to abstain), and an ungrounded
// prompt used when retrieval produced nothing. Both demand a single JSON
// object matching the guide schema.
package prompt

import (
	"fmt"
	"strings"

	"github.com/guidesmith/guidesmith/internal/retrieval"
)

// guideSchema is the JSON shape the model is asked to produce. Shared by
// both prompt variants so they cannot drift apart.
const guideSchema = `{
  "title": <string>,
  "description": <string>,
  "steps": [{"number": <int>, "title": <string>, "action": <string>, "why": <string>, "check": <string>, "illustration_caption": <string>}],
  "pro_tip": <string>,
  "troubleshooting": [{"issue": <string>, "fix": <string>}],
  "safety": [<string>]
}`

// Compose returns the full prompt for the given question. With passages it
// produces the grounded variant; without, the question-only variant.
func Compose(question string, passages []retrieval.Passage) string {
	if len(passages) == 0 {
		return composeUngrounded(question)
	}
	return composeGrounded(question, passages)
}

func composeUngrounded(question string) string {
	var b strings.Builder
	b.WriteString("You are a careful technical writer. Write a step-action how-to guide as JSON with this schema:\n\n")
	b.WriteString(guideSchema)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Use general knowledge and best practices to answer.\n")
	b.WriteString("- Keep each step concise and atomic.\n")
	b.WriteString("- Keep tone neutral and instructional.\n")
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	b.WriteString("\nRespond with ONLY JSON (no commentary).\n")
	return b.String()
}

func composeGrounded(question string, passages []retrieval.Passage) string {
	var b strings.Builder
	b.WriteString("You are a careful technical writer. Using ONLY the information below, write a step-action how-to guide as JSON with this schema:\n\n")
	b.WriteString(guideSchema)
	b.WriteString("\n\nRules:\n")
	b.WriteString(`- If the context does not contain enough information to answer, set "steps": [] and include only "abstain": true.` + "\n")
	b.WriteString("- Keep each step concise and atomic.\n")
	b.WriteString("- Keep tone neutral and instructional.\n")
	fmt.Fprintf(&b, "\nQuestion: %s\n", question)
	b.WriteString("\nContext:\n")
	b.WriteString(joinPassages(passages))
	b.WriteString("\n\nRespond with ONLY JSON (no commentary).\n")
	return b.String()
}

// joinPassages renders passages as numbered context blocks: "[1] text".
func joinPassages(passages []retrieval.Passage) string {
	parts := make([]string, len(passages))
	for i, p := range passages {
		parts[i] = fmt.Sprintf("[%d] %s", i+1, p.Text)
	}
	return strings.Join(parts, "\n\n")
}
