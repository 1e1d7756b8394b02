// Package clipboard writes generated text to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// systemWriteAll is a package-level variable to allow mocking in tests.
var systemWriteAll = clipboard.WriteAll

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	return systemWriteAll(text)
}

// System returns a Writer backed by the platform clipboard.
func System() Writer {
	return systemWriter{}
}

// Unsupported reports whether the platform clipboard is unavailable
// (e.g. no xclip/xsel/wl-copy on Linux).
func Unsupported() bool {
	return clipboard.Unsupported
}

type discard struct{}

func (discard) WriteAll(string) error { return nil }

// Discard accepts and drops every write.
var Discard Writer = discard{}

// Memory keeps the last written value. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	Err    error // returned from WriteAll when set
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last successfully written value.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes counts WriteAll calls, including failed ones.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
