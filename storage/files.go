package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	apperrors "yt-transcript/errors"
	"yt-transcript/models"
)

const maxBaseNameLength = 200

// invalidFilenameChars are stripped from titles before they become file
// names.
const invalidFilenameChars = `<>:"/\|?*`

// FileStore writes transcript artifacts to a local directory. Writes are
// unconditional overwrites; two titles that sanitize to the same base name
// resolve last-write-wins.
type FileStore struct {
	dir    string
	logger *logrus.Logger
}

func NewFileStore(dir string, log *logrus.Logger) *FileStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileStore{dir: dir, logger: log}
}

// SaveRaw writes the timestamped transcript to {base}_raw.md and returns
// the path.
func (s *FileStore) SaveRaw(video models.Video, body string) (string, error) {
	const op = "FileStore.SaveRaw"

	filename := BaseName(video) + "_raw.md"
	header := fmt.Sprintf("# %s (Raw Transcript)\n\n---\n\n", video.DisplayTitle())

	return s.write(op, filename, header, body)
}

// SaveCleaned writes the rewritten transcript to {base}.md and returns the
// path.
func (s *FileStore) SaveCleaned(video models.Video, body string) (string, error) {
	const op = "FileStore.SaveCleaned"

	filename := BaseName(video) + ".md"
	header := fmt.Sprintf("# %s (Cleaned Transcript)\n\n---\n\n", video.DisplayTitle())

	return s.write(op, filename, header, body)
}

func (s *FileStore) write(op, filename, header, body string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", apperrors.Internal(op, errors.Wrap(err, "creating output directory"), "Failed to create output directory")
	}

	path := filepath.Join(s.dir, filename)
	content := header + body
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", apperrors.Internal(op, errors.Wrap(err, "writing transcript file"), "Failed to write transcript file")
	}

	s.logger.WithField("path", path).Info("Saved transcript")
	return path, nil
}

// BaseName derives the filesystem-safe base name for a video's artifacts:
// the sanitized title, or the raw identifier when no title is available
// or sanitization strips everything.
func BaseName(video models.Video) string {
	if !video.HasTitle() {
		return video.ID
	}
	if base := SanitizeFilename(video.Title); base != "" {
		return base
	}
	return video.ID
}

// SanitizeFilename strips characters that are invalid in file names, trims
// surrounding whitespace and caps the result at 200 characters.
func SanitizeFilename(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return -1
		}
		return r
	}, name)

	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > maxBaseNameLength {
		runes = runes[:maxBaseNameLength]
	}
	return string(runes)
}
