package hearts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Trace is the append-only diagnostics log: a timestamped file of
// sequentially numbered lines. Purely for debugging; the format is
// not a contract. A nil Trace discards everything.
type Trace struct {
	f *os.File
	n int
}

// NewTrace creates the trace file in dir, named after the current
// time and the game id.
func NewTrace(dir string, id ulid.ULID) (*Trace, error) {
	name := fmt.Sprintf("hearts-%s-%s.log", time.Now().Format("2006-01-02-150405"), id)
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Trace{f: f}, nil
}

func (t *Trace) Log(msg string) {
	if t == nil || msg == "" {
		return
	}
	t.n++
	fmt.Fprintf(t.f, "%d. %s\n", t.n, msg)
}

func (t *Trace) Close() error {
	if t == nil {
		return nil
	}
	return t.f.Close()
}
