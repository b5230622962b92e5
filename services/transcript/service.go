package transcript

import (
	"context"

	"github.com/sirupsen/logrus"

	"yt-transcript/errors"
	"yt-transcript/models"
	"yt-transcript/validation"
)

type service struct {
	fetcher   Fetcher
	validator *validation.Validator
	config    Config
	logger    *logrus.Logger
}

// NewService creates a new transcript service
func NewService(
	fetcher Fetcher,
	validator *validation.Validator,
	config Config,
	log *logrus.Logger,
) Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{
		fetcher:   fetcher,
		validator: validator,
		config:    config,
		logger:    log,
	}
}

func (s *service) Fetch(ctx context.Context, url string) (*models.Transcript, error) {
	const op = "TranscriptService.Fetch"
	logger := s.logger.WithField("url", url)

	videoID, err := s.validator.ExtractVideoID(url)
	if err != nil {
		logger.WithError(err).Warn("No video ID found in URL")
		return nil, errors.InvalidInput(op, err, "Invalid YouTube URL")
	}
	logger = logger.WithField("video_id", videoID)
	logger.Info("Extracted video ID")

	video := models.Video{ID: videoID, URL: url}

	// Title lookup is best-effort. A failure falls back to the bare
	// identifier for filenames and "Unknown Title" for headings.
	title, err := s.fetcher.Title(ctx, videoID)
	if err != nil {
		logger.WithError(err).Warn("Failed to fetch video title")
	} else {
		video.Title = title
	}

	lines, err := s.fetcher.Lines(ctx, videoID)
	if err != nil {
		logger.WithError(err).Error("Failed to fetch transcript")
		if errors.IsNotFound(err) {
			return nil, errors.NotFound(op, err, "Transcript not available")
		}
		return nil, errors.Unavailable(op, err, "Transcript not available")
	}
	if len(lines) == 0 {
		return nil, errors.NotFound(op, nil, "Transcript not available")
	}

	logger.WithField("lines", len(lines)).Info("Fetched transcript")

	return &models.Transcript{
		Video: video,
		Lines: lines,
	}, nil
}
