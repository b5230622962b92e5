package models

// Video identifies a single YouTube video. ID is the 11-character opaque
// token extracted from the URL; Title is empty when the metadata lookup
// failed.
type Video struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

func (v *Video) HasTitle() bool { return v.Title != "" }

// DisplayTitle is the heading used in saved files and console output.
func (v *Video) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return "Unknown Title"
}

// TranscriptLine is one timed caption unit. Start and Duration are seconds.
type TranscriptLine struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Transcript holds a video's metadata and its caption lines in
// chronological order. Constructed once per run, immutable after fetch.
type Transcript struct {
	Video Video            `json:"video"`
	Lines []TranscriptLine `json:"lines"`
}

func (t *Transcript) IsEmpty() bool { return len(t.Lines) == 0 }
