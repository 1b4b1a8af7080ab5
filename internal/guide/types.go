package guide

// Step is a single numbered action in a how-to guide.
type Step struct {
	Number              int    `json:"number"`
	Title               string `json:"title"`
	Action              string `json:"action"`
	Why                 string `json:"why,omitempty"`
	Check               string `json:"check,omitempty"`
	IllustrationCaption string `json:"illustration_caption,omitempty"`
	ImageURL            string `json:"image_url,omitempty"`
	ImageError          string `json:"image_error,omitempty"`
}

// TroubleshootingEntry pairs a likely issue with its fix.
type TroubleshootingEntry struct {
	Issue string `json:"issue"`
	Fix   string `json:"fix"`
}

// Guide is the structured how-to document returned to clients.
//
// Abstain is true when the guide was produced without enough grounding
// material to be trusted; clients should surface it as a caveat.
type Guide struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Steps           []Step                 `json:"steps"`
	ProTip          string                 `json:"pro_tip,omitempty"`
	Troubleshooting []TroubleshootingEntry `json:"troubleshooting"`
	Safety          []string               `json:"safety"`
	Abstain         bool                   `json:"abstain"`
}
