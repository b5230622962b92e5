package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"yt-transcript/errors"
	"yt-transcript/models"
	"yt-transcript/services/cleaner"
	"yt-transcript/services/transcript"
)

// Store is the persistence boundary for transcript artifacts.
type Store interface {
	SaveRaw(video models.Video, body string) (string, error)
	SaveCleaned(video models.Video, body string) (string, error)
}

// Runner executes one URL through the full pipeline: parse, fetch, format,
// clean, save. Stages run strictly in order; a parse or transcript failure
// aborts the run, title and cleaning failures do not.
type Runner struct {
	transcripts transcript.Service
	cleaner     cleaner.Service
	store       Store
	logger      *logrus.Logger
	out         io.Writer
}

func NewRunner(
	transcripts transcript.Service,
	cleanerService cleaner.Service,
	store Store,
	log *logrus.Logger,
) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		transcripts: transcripts,
		cleaner:     cleanerService,
		store:       store,
		logger:      log,
		out:         os.Stdout,
	}
}

// SetOutput redirects console output, used by tests.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// Result reports what a run produced.
type Result struct {
	Video       models.Video
	RawPath     string
	CleanedPath string
}

func (r *Runner) Run(ctx context.Context, url string) (*Result, error) {
	const op = "Runner.Run"
	logger := r.logger.WithFields(logrus.Fields{
		"run_id": uuid.New().String(),
		"url":    url,
	})
	logger.Info("Starting transcript run")

	doc, err := r.transcripts.Fetch(ctx, url)
	if err != nil {
		if errors.IsInvalidInput(err) {
			fmt.Fprintln(r.out, "Invalid YouTube URL.")
		} else {
			fmt.Fprintln(r.out, "Transcript not available.")
		}
		return nil, err
	}

	raw := transcript.Render(doc.Lines)

	fmt.Fprintln(r.out, "\nRaw Transcript:")
	fmt.Fprintln(r.out, "==========================")
	fmt.Fprintf(r.out, "Title: %s\n", doc.Video.DisplayTitle())
	fmt.Fprintln(r.out, "==========================")
	fmt.Fprintln(r.out, raw)

	result := &Result{Video: doc.Video}

	rawPath, err := r.store.SaveRaw(doc.Video, raw)
	if err != nil {
		logger.WithError(err).Error("Failed to save raw transcript")
		fmt.Fprintf(r.out, "Error saving raw transcript: %v\n", err)
	} else {
		result.RawPath = rawPath
		fmt.Fprintf(r.out, "Raw transcript saved to %s\n", rawPath)
	}

	fmt.Fprintln(r.out, "\nCleaning transcript (this may take a moment)...")
	cleaned, err := r.cleaner.Clean(ctx, raw)
	if err != nil {
		logger.WithError(err).Error("Failed to clean transcript")
		fmt.Fprintln(r.out, "Failed to clean transcript.")
		return result, nil
	}

	fmt.Fprintln(r.out, "\nCleaned Transcript:")
	fmt.Fprintln(r.out, "==========================")
	fmt.Fprintln(r.out, cleaned)

	cleanedPath, err := r.store.SaveCleaned(doc.Video, cleaned)
	if err != nil {
		logger.WithError(err).Error("Failed to save cleaned transcript")
		fmt.Fprintf(r.out, "Error saving cleaned transcript: %v\n", err)
		return result, nil
	}
	result.CleanedPath = cleanedPath
	fmt.Fprintf(r.out, "Cleaned transcript saved to %s\n", cleanedPath)

	return result, nil
}
