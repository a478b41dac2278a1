// This file provides JSONL export and import of whole snapshots, one file per
// entity kind, written with the temp-file, fsync, rename pattern.
package sqlite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// JSONL file names inside an export directory.
// maxLineSize bounds a single JSONL record.
const maxLineSize = 1 << 20

const (
	fileClients      = "clients.jsonl"
	fileServices     = "services.jsonl"
	fileExpenses     = "expenses.jsonl"
	fileAppointments = "appointments.jsonl"
	fileRevenues     = "revenues.jsonl"
)

// ExportJSONL writes snap to dir, creating dir if needed. Each kind file is
// replaced atomically.
func ExportJSONL(dir string, snap model.Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	if err := exportKind(dir, fileClients, snap.Clients); err != nil {
		return err
	}
	if err := exportKind(dir, fileServices, snap.Services); err != nil {
		return err
	}
	if err := exportKind(dir, fileExpenses, snap.Expenses); err != nil {
		return err
	}
	if err := exportKind(dir, fileAppointments, snap.Appointments); err != nil {
		return err
	}
	return exportKind(dir, fileRevenues, snap.Revenues)
}

// ImportJSONL reads a snapshot previously written by ExportJSONL. A missing
// kind file is read as an empty kind. Blank lines are skipped and a malformed
// line fails the import with types.ErrInvalidData.
// A well-formed line that is not a valid entity fails the import, as does a
// dir that is not a directory.
func ImportJSONL(dir string) (model.Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("opening import directory: %w", err)
	}
	if !info.IsDir() {
		return model.Snapshot{}, fmt.Errorf("%s is not a directory", dir)
	}

	var snap model.Snapshot
	if snap.Clients, err = importKind[types.Client](dir, fileClients); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Services, err = importKind[types.Service](dir, fileServices); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Expenses, err = importKind[types.Expense](dir, fileExpenses); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Appointments, err = importKind[types.Appointment](dir, fileAppointments); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Revenues, err = importKind[types.Revenue](dir, fileRevenues); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

func exportKind[T any](dir, file string, items []T) error {
	records := make([]json.RawMessage, 0, len(items))
	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding %s line %d: %w", file, i+1, err)
		}
		records = append(records, data)
	}
	return writeJSONL(filepath.Join(dir, file), records)
}

func importKind[T any](dir, file string) ([]T, error) {
	records, err := readJSONL(filepath.Join(dir, file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	for i, rec := range records {
		item, err := decodeEntity[T](rec)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", file, i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// readJSONL reads a JSONL file and returns each non-blank line as a
// json.RawMessage. Line numbers in errors are 1-based.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			return nil, fmt.Errorf("%s line %d: %w", path, n, types.ErrInvalidData)
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
