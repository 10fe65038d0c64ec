package auditlog_test

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"travel_companion/internal/storage/auditlog"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return rows
}

func TestHeaderOnceAndOrderedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.csv")
	l := auditlog.New(path)

	for i := 0; i < 3; i++ {
		if err := l.Record("/weather", fmt.Sprintf("city%d", i), ""); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	rows := readRows(t, path)
	if len(rows) != 4 {
		t.Fatalf("want header + 3 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"timestamp", "endpoint", "city", "message"}) {
		t.Fatalf("header: %v", rows[0])
	}

	var prev time.Time
	for i, row := range rows[1:] {
		ts, err := time.Parse(time.RFC3339Nano, row[0])
		if err != nil {
			t.Fatalf("row %d timestamp: %v", i, err)
		}
		if ts.Before(prev) {
			t.Fatalf("timestamps not monotonic at row %d", i)
		}
		prev = ts
		if row[1] != "/weather" || row[2] != fmt.Sprintf("city%d", i) {
			t.Fatalf("row %d: %v", i, row)
		}
	}
}

func TestLazyCreationInNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "logs.csv")
	l := auditlog.New(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file must not exist before first write")
	}
	if err := l.Record("/hotels", "chennai", "2026-09-10 to 2026-09-12"); err != nil {
		t.Fatalf("record: %v", err)
	}
	rows := readRows(t, path)
	if len(rows) != 2 {
		t.Fatalf("want header + 1 row, got %d", len(rows))
	}
	if rows[1][3] != "2026-09-10 to 2026-09-12" {
		t.Fatalf("message: %q", rows[1][3])
	}
}

func TestConcurrentAppendsDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.csv")
	l := auditlog.New(path)

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := l.Record("/chat", "", fmt.Sprintf("message %d with, comma", i)); err != nil {
				t.Errorf("record: %v", err)
			}
		}(i)
	}
	wg.Wait()

	rows := readRows(t, path)
	if len(rows) != n+1 {
		t.Fatalf("want header + %d rows, got %d", n, len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			t.Fatalf("row %d has %d fields: %v", i, len(row), row)
		}
	}
}
