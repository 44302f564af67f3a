package visitlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedJournal(t *testing.T) *Journal {
	t.Helper()
	j := New(filepath.Join(t.TempDir(), "logs", "app.log"))
	j.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 0, 123e6, time.FixedZone("CET", 3600))
	}
	return j
}

func TestTailMissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "nope.log"))
	got, err := j.Tail(50)
	require.NoError(t, err)
	assert.Equal(t, NoLogs, got)
}

func TestAppendFormatsLine(t *testing.T) {
	j := fixedJournal(t)
	require.NoError(t, j.Append("Home page visited"))

	data, err := os.ReadFile(j.Path())
	require.NoError(t, err)
	assert.Equal(t, "[2024-03-01T11:30:00.123Z] Home page visited\n", string(data))
}

func TestTailKeepsLastLines(t *testing.T) {
	j := fixedJournal(t)
	for i := 0; i < 60; i++ {
		require.NoError(t, j.Append(fmt.Sprintf("visit %d", i)))
	}

	got, err := j.Tail(50)
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 50)
	assert.True(t, strings.HasSuffix(lines[0], "visit 10"))
	assert.True(t, strings.HasSuffix(lines[49], "visit 59"))
}

func TestTailEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := New(path).Tail(50)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestAppendConcurrent(t *testing.T) {
	j := fixedJournal(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, j.Append(fmt.Sprintf("visit %d", i)))
		}(i)
	}
	wg.Wait()

	got, err := j.Tail(0)
	require.NoError(t, err)
	assert.Len(t, strings.Split(got, "\n"), 20)
}
