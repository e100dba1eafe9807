// Package logstore persists captured step output.
//
// Each run gets its own directory; each step of each job streams its
// combined stdout/stderr into one file. Step results reference these files
// by path rather than owning the content.
package logstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/conveyorci/conveyor/internal/errors"
)

// unsafeChars matches anything that is not filesystem-name friendly.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// Store writes step output files under a root directory.
// A Store is safe for concurrent use by parallel job runners: every step
// owns a distinct file.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first write.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// CreateStepLog creates the output file for one step and returns a writer
// plus the file's path. The caller owns closing the writer.
func (s *Store) CreateStepLog(runID, jobName string, stepIndex int, stepName string) (io.WriteCloser, string, error) {
	dir := filepath.Join(s.root, normalize(runID), normalize(jobName))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, "", errors.Wrap(err, "failed to create step log directory")
	}

	name := fmt.Sprintf("%02d-%s.log", stepIndex+1, normalize(stepName))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640) //nolint:gosec // path is built from sanitized parts
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to create step log %s", path)
	}

	return f, path, nil
}

// normalize replaces characters that are unsafe in file names.
func normalize(name string) string {
	if name == "" {
		return "unnamed"
	}
	const maxLen = 64
	cleaned := unsafeChars.ReplaceAllString(name, "-")
	if len(cleaned) > maxLen {
		cleaned = cleaned[:maxLen]
	}
	return cleaned
}
