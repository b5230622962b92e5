package cleaner

import (
	"context"
	"strings"
	"testing"
	"time"

	"yt-transcript/errors"
)

func TestBuildPrompt(t *testing.T) {
	raw := "[0:00:00] Hello\n[0:01:01] world"
	prompt := BuildPrompt(raw)

	if !strings.HasSuffix(prompt, raw) {
		t.Error("expected prompt to end with the raw transcript")
	}
	if !strings.Contains(prompt, "reformat the transcript into clear paragraphs") {
		t.Error("expected prompt to carry the rewrite instruction")
	}
	if !strings.Contains(prompt, "Transcript:\n") {
		t.Error("expected prompt to label the transcript section")
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	raw := "[0:00:00] same input"
	if BuildPrompt(raw) != BuildPrompt(raw) {
		t.Error("expected identical prompts for identical input")
	}
}

func TestCleanEmptyTranscript(t *testing.T) {
	svc := NewService(Config{
		APIKey: "key",
		Model:  "gemini-2.0-flash-exp",
	}, nil)

	_, err := svc.Clean(context.Background(), "")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestCleanMissingAPIKey(t *testing.T) {
	svc := NewService(Config{
		Model:          "gemini-2.0-flash-exp",
		APIVersion:     "v1alpha",
		RequestTimeout: time.Second,
	}, nil)

	_, err := svc.Clean(context.Background(), "[0:00:00] Hello")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.IsInvalidInput(err) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
	if !strings.Contains(err.Error(), "GOOGLE_API_KEY") {
		t.Errorf("expected message naming the missing key, got %q", err.Error())
	}
}
