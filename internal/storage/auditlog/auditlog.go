// internal/storage/auditlog/auditlog.go
package auditlog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"time"

	"travel_companion/internal/adapters/observability"
)

var header = []string{"timestamp", "endpoint", "city", "message"}

// Log is the append-only CSV audit trail. A mutex serializes the whole
// append-and-flush so concurrent request handlers cannot interleave rows,
// and every row is synced before Record returns (crash-only durability).
type Log struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Record appends one row, creating the file and its header row lazily on
// first write. Callers treat a returned error as log-and-continue; the
// request itself must not fail on an audit problem.
func (l *Log) Record(endpoint, city, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.append(endpoint, city, message); err != nil {
		observability.ObserveAudit("error")
		return err
	}
	observability.ObserveAudit("ok")
	return nil
}

func (l *Log) append(endpoint, city, message string) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	_, statErr := os.Stat(l.path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	row := []string{l.now().Format(time.RFC3339Nano), endpoint, city, message}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}
