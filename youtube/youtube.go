package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	apperrors "yt-transcript/errors"
	"yt-transcript/models"
)

const oembedEndpoint = "https://www.youtube.com/oembed"

type Config struct {
	Languages      []string
	RequestTimeout time.Duration
}

// Client fetches video metadata from the public oEmbed endpoint and caption
// lines from the transcript service.
type Client struct {
	config     Config
	httpClient *http.Client
	transcript *yt_transcript.YtTranscriptClient
	logger     *logrus.Logger
}

func NewClient(cfg Config, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		transcript: yt_transcript.NewClient(),
		logger:     log,
	}
}

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Title looks up the video title via oEmbed. Any non-200 response or
// transport error yields a not-found error; callers treat that as a
// best-effort miss, not a fatal failure.
func (c *Client) Title(ctx context.Context, videoID string) (string, error) {
	return c.titleFromEndpoint(ctx, oembedEndpoint, videoID)
}

func (c *Client) titleFromEndpoint(ctx context.Context, base string, videoID string) (string, error) {
	const op = "youtube.Client.Title"

	watchURL := fmt.Sprintf("http://www.youtube.com/watch?v=%s", videoID)
	endpoint := fmt.Sprintf("%s?url=%s&format=json", base, url.QueryEscape(watchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", apperrors.Internal(op, err, "Failed to build oEmbed request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Unavailable(op, errors.Wrap(err, "oEmbed request failed"), "Failed to fetch video title")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NotFound(op, nil, fmt.Sprintf("oEmbed returned status %d", resp.StatusCode))
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", apperrors.Internal(op, errors.Wrap(err, "decoding oEmbed response"), "Failed to parse video metadata")
	}

	return body.Title, nil
}

// Lines fetches the caption track for a video in the configured language
// preference order. Entries come back in chronological order; no re-sorting
// happens here or downstream.
func (c *Client) Lines(ctx context.Context, videoID string) ([]models.TranscriptLine, error) {
	const op = "youtube.Client.Lines"

	transcripts, err := c.transcript.GetTranscripts(videoID, c.config.Languages)
	if err != nil {
		return nil, apperrors.Unavailable(op, err, "Failed to fetch transcript")
	}

	if len(transcripts) == 0 {
		return nil, apperrors.NotFound(op, nil, "No transcript available for video")
	}

	track := transcripts[0]
	lines := make([]models.TranscriptLine, 0, len(track.Lines))
	for _, line := range track.Lines {
		lines = append(lines, models.TranscriptLine{
			Start:    line.Start,
			Duration: line.Duration,
			Text:     line.Text,
		})
	}

	c.logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"language": track.LanguageCode,
		"lines":    len(lines),
	}).Debug("Fetched transcript")

	return lines, nil
}
