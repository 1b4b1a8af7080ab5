package assets

import (
	"fmt"
	"strings"
)

// IllustrationPrompt builds the image prompt for a step. The step title
// leads when present; the action is appended as supporting detail.
func IllustrationPrompt(title, action, style string) string {
	title = strings.TrimSpace(title)
	action = strings.TrimSpace(action)

	core := title
	if core == "" {
		core = action
	}
	detail := ""
	if action != "" && title != "" {
		detail = fmt.Sprintf(" Action: %s", action)
	}

	return fmt.Sprintf(
		"%s. Show: %s.%s "+
			"Perspective: simple, straight-on. Background: white/neutral. "+
			"Purpose: job-aid step illustration for technicians. "+
			"Use minimal, readable labels if helpful. Avoid decorative elements.",
		style, core, detail,
	)
}
