package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/guidesmith/guidesmith/internal/guide"
)

// Model replies are rarely clean JSON: they arrive fenced, prefixed with
// commentary, or both. Extraction peels those layers in a fixed order:
// a ```json fence wins, then the widest first-{ to last-} span.
var (
	fenceRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")
	braceRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON returns the best JSON candidate embedded in a model reply.
// An empty reply is an error; a reply without fences or braces is returned
// as-is and left for the decoder to reject.
func ExtractJSON(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("generation: empty model response")
	}
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	if m := braceRe.FindString(text); m != "" {
		text = m
	}
	return text, nil
}

// DecodeGuide extracts and unmarshals a guide from a raw model reply.
func DecodeGuide(text string) (guide.Guide, error) {
	candidate, err := ExtractJSON(text)
	if err != nil {
		return guide.Guide{}, err
	}

	var g guide.Guide
	if err := json.Unmarshal([]byte(candidate), &g); err != nil {
		return guide.Guide{}, fmt.Errorf("generation: model response is not valid guide JSON: %w", err)
	}
	return g, nil
}
