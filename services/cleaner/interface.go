package cleaner

import (
	"context"
	"time"
)

type Service interface {
	// Clean sends a formatted raw transcript to the generative model and
	// returns the rewritten text. Every failure mode (missing key, network,
	// quota, malformed response) collapses to a single error; callers skip
	// the cleaned artifact and move on.
	Clean(ctx context.Context, rawTranscript string) (string, error)
}

type Config struct {
	APIKey         string
	Model          string
	APIVersion     string
	RequestTimeout time.Duration
}
