package transcript

import (
	"context"

	"yt-transcript/models"
)

type Service interface {
	// Fetch resolves a URL to a video and retrieves its title and caption
	// lines. A missing title is tolerated; missing captions are not.
	Fetch(ctx context.Context, url string) (*models.Transcript, error)
}

// Fetcher is the low-level video access boundary, implemented by the
// youtube package and by mocks in tests.
type Fetcher interface {
	Title(ctx context.Context, videoID string) (string, error)
	Lines(ctx context.Context, videoID string) ([]models.TranscriptLine, error)
}

type Config struct {
	Languages []string
}
