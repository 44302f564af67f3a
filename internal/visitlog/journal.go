// Package visitlog appends page visits to a flat file and reads back the tail.
package visitlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// NoLogs is returned by Tail when nothing has been written yet.
const NoLogs = "No logs yet..."

const timestampLayout = "2006-01-02T15:04:05.000Z"

type Journal struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

func New(path string) *Journal {
	return &Journal{path: path, now: time.Now}
}

func (j *Journal) Path() string { return j.path }

// Append writes "[timestamp] message" as one line.
func (j *Journal) Append(message string) error {
	line := fmt.Sprintf("[%s] %s\n", j.now().UTC().Format(timestampLayout), message)

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", j.path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", j.path, err)
	}
	return f.Close()
}

// Tail returns the last n lines of the journal. A missing file yields NoLogs.
func (j *Journal) Tail(n int) (string, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NoLogs, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", j.path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "", nil
	}
	lines := strings.Split(trimmed, "\n")
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n"), nil
}
