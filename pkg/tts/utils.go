package tts

import (
	"fmt"
	"math"
	"regexp"
)

var speakerLabelRegex = regexp.MustCompile(`(?m)^[A-Za-z]+(\s*\([^)]+\))?:\s*`)

// StripSpeakerLabels removes speaker labels like "Luna:" or "Ana (child):" from scripts.
func StripSpeakerLabels(script string) string {
	return speakerLabelRegex.ReplaceAllString(script, "")
}

// ProsodyPercent converts a multiplier (1.0 = neutral) into the signed
// percentage string SSML prosody attributes expect, e.g. 0.9 -> "-10%".
func ProsodyPercent(mult float64) string {
	pct := math.Round((mult - 1.0) * 100)
	return fmt.Sprintf("%+.0f%%", pct)
}
