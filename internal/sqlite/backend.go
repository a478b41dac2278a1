// Package sqlite persists the homebiz collections in a SQLite database.
// Each entity kind has its own table; rows keep the collection order in a
// position column and the entity itself as a JSON payload.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// Backend stores model snapshots in SQLite.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB

	// now stamps updated_at. Replaced in tests.
	now func() time.Time
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{now: time.Now}
}

// Attach opens (or creates) the database in config.DataDir and makes sure
// every kind table exists. Existing rows are kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps writes serialized.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return err
	}
	b.db = nil
	b.attached = false
	return nil
}

// Load reads every table in position order. Rows whose payload does not
// decode to a valid entity fail the load.
func (b *Backend) Load() (model.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var snap model.Snapshot
	if !b.attached {
		return snap, types.ErrDetached
	}

	var err error
	if snap.Clients, err = loadRows[types.Client](b.db, tableClients); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Services, err = loadRows[types.Service](b.db, tableServices); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Expenses, err = loadRows[types.Expense](b.db, tableExpenses); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Appointments, err = loadRows[types.Appointment](b.db, tableAppointments); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Revenues, err = loadRows[types.Revenue](b.db, tableRevenues); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}

// Save replaces the stored rows with snap in a single transaction.
func (b *Backend) Save(snap model.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	stamp := b.now().UTC().Format(time.RFC3339)
	if err := saveRows(tx, tableClients, snap.Clients, stamp); err != nil {
		return err
	}
	if err := saveRows(tx, tableServices, snap.Services, stamp); err != nil {
		return err
	}
	if err := saveRows(tx, tableExpenses, snap.Expenses, stamp); err != nil {
		return err
	}
	if err := saveRows(tx, tableAppointments, snap.Appointments, stamp); err != nil {
		return err
	}
	if err := saveRows(tx, tableRevenues, snap.Revenues, stamp); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// DataDir returns the directory holding the database file.
func (b *Backend) DataDir() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.config.DataDir
}

func saveRows[T any](tx *sql.Tx, table string, items []T, stamp string) error {
	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	stmt, err := tx.Prepare("INSERT INTO " + table + " (record_id, position, payload, updated_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding %s row %d: %w", table, i, err)
		}
		if _, err := stmt.Exec(generateUUID(), i, string(payload), stamp); err != nil {
			return fmt.Errorf("inserting %s row %d: %w", table, i, err)
		}
	}
	return nil
}

func loadRows[T any](db *sql.DB, table string) ([]T, error) {
	rows, err := db.Query("SELECT record_id, payload FROM " + table + " ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		item, err := decodeEntity[T]([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("%s record %s: %w", table, id, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	return items, nil
}

// decodeEntity unmarshals and validates one stored entity.
func decodeEntity[T any](data []byte) (T, error) {
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return item, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	if err := types.Validate(item); err != nil {
		return item, err
	}
	return item, nil
}

// generateUUID generates a new UUID v7 for record ids.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
