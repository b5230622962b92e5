package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"yt-transcript/config"
	"yt-transcript/logger"
	"yt-transcript/pipeline"
	"yt-transcript/services/cleaner"
	"yt-transcript/services/transcript"
	"yt-transcript/storage"
	"yt-transcript/validation"
	"yt-transcript/youtube"
)

func main() {
	// Optional .env file for the API key and overrides.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return
	}

	// Initialize validator
	validator := validation.NewValidator()

	// Initialize YouTube client
	ytClient := youtube.NewClient(youtube.Config{
		Languages:      cfg.Transcript.Languages,
		RequestTimeout: cfg.Transcript.RequestTimeout,
	}, appLogger)

	// Initialize transcript service
	transcriptService := transcript.NewService(
		ytClient,
		validator,
		transcript.Config{Languages: cfg.Transcript.Languages},
		appLogger,
	)

	// Initialize cleaner service
	cleanerService := cleaner.NewService(cleaner.Config{
		APIKey:         cfg.Cleaner.APIKey,
		Model:          cfg.Cleaner.Model,
		APIVersion:     cfg.Cleaner.APIVersion,
		RequestTimeout: cfg.Cleaner.RequestTimeout,
	}, appLogger)

	// Initialize file store
	store := storage.NewFileStore(cfg.OutputDir, appLogger)

	runner := pipeline.NewRunner(transcriptService, cleanerService, store, appLogger)

	url, err := readURL(os.Args[1:])
	if err != nil {
		fmt.Printf("Failed to read URL: %v\n", err)
		return
	}
	if url == "" {
		fmt.Println("No URL provided.")
		return
	}

	// Failures are reported through console messages; the process exits
	// zero either way.
	if _, err := runner.Run(context.Background(), url); err != nil {
		appLogger.WithError(err).Error("Run failed")
	}
}

// readURL takes the video URL from the first argument when present,
// otherwise prompts for one line on stdin.
func readURL(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	fmt.Print("Please enter the YouTube video URL: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
