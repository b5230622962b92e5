package cleaner

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"yt-transcript/errors"
)

// Prompt sent with every rewrite request. The raw transcript blob is
// appended after the instruction.
const promptTemplate = "The following is a raw YouTube transcript. " +
	"Please reformat the transcript into clear paragraphs. " +
	"Each paragraph should begin with the timestamp of the first line in that paragraph, " +
	"and the formatting should be cleaned up (remove extraneous line breaks, duplicate timestamps, etc.).\n\n" +
	"Transcript:\n"

type service struct {
	config Config
	logger *logrus.Logger
}

// NewService creates a new cleaner service
func NewService(config Config, log *logrus.Logger) Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{
		config: config,
		logger: log,
	}
}

func (s *service) Clean(ctx context.Context, rawTranscript string) (string, error) {
	const op = "CleanerService.Clean"
	logger := s.logger.WithField("model", s.config.Model)

	if rawTranscript == "" {
		return "", errors.InvalidInput(op, nil, "Transcript is empty")
	}

	// The key is checked here rather than at startup so runs without a
	// key still produce the raw transcript file.
	if s.config.APIKey == "" {
		return "", errors.InvalidInput(op, nil, "GOOGLE_API_KEY is not set")
	}

	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.config.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: s.config.APIVersion,
		},
	})
	if err != nil {
		logger.WithError(err).Error("Failed to create generative client")
		return "", errors.Unavailable(op, err, "Failed to reach cleaning service")
	}

	prompt := BuildPrompt(rawTranscript)
	logger.WithField("prompt_chars", len(prompt)).Info("Requesting transcript cleanup")

	resp, err := client.Models.GenerateContent(ctx, s.config.Model, genai.Text(prompt), nil)
	if err != nil {
		logger.WithError(err).Error("Cleaning request failed")
		return "", errors.Unavailable(op, err, "Cleaning request failed")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.Internal(op, nil, "Cleaning service returned no text")
	}

	return text, nil
}

// BuildPrompt assembles the fixed instruction plus the raw transcript blob.
func BuildPrompt(rawTranscript string) string {
	return promptTemplate + rawTranscript
}
