package transcript

import (
	"fmt"
	"strings"

	"yt-transcript/models"
)

// FormatTimestamp renders a start offset as H:MM:SS. Fractional seconds
// are truncated, not rounded, so 65.9 renders as 0:01:05.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatLine renders a single caption line as "[H:MM:SS] text".
func FormatLine(line models.TranscriptLine) string {
	return fmt.Sprintf("[%s] %s", FormatTimestamp(line.Start), line.Text)
}

// Render assembles the whole transcript into one newline-joined blob,
// preserving chronological order. Pure and deterministic: the same lines
// always produce byte-identical output.
func Render(lines []models.TranscriptLine) string {
	formatted := make([]string, 0, len(lines))
	for _, line := range lines {
		formatted = append(formatted, FormatLine(line))
	}
	return strings.Join(formatted, "\n")
}
