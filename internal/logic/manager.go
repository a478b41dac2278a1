// Package logic runs user input against the model and keeps storage in step
// with it.
package logic

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/homebiz/internal/command"
	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/internal/parser"
	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// ErrStorage wraps every failure to read or write storage.
var ErrStorage = errors.New("storage failure")

// Storage persists whole model snapshots.
type Storage interface {
	Load() (model.Snapshot, error)
	Save(model.Snapshot) error
}

// Manager executes one line of input at a time. It is not safe for
// concurrent use.
type Manager struct {
	model      *model.Model
	dispatcher *parser.Dispatcher
	storage    Storage
	logger     *zap.Logger
}

// New returns a manager operating on m. A nil logger discards log output.
func New(m *model.Model, storage Storage, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		model:      m,
		dispatcher: parser.NewDispatcher(),
		storage:    storage,
		logger:     logger,
	}
}

// Model returns the model the manager operates on.
func (mgr *Manager) Model() *model.Model {
	return mgr.model
}

// Load replaces the model with the stored snapshot. Stored data that is
// invalid or holds duplicates is discarded with a warning and the model
// starts empty.
func (mgr *Manager) Load() error {
	snap, err := mgr.storage.Load()
	if err == nil {
		err = mgr.model.Restore(snap)
	}
	switch {
	case err == nil:
		mgr.logger.Debug("loaded data",
			zap.Int("clients", len(snap.Clients)),
			zap.Int("services", len(snap.Services)),
			zap.Int("expenses", len(snap.Expenses)),
			zap.Int("appointments", len(snap.Appointments)),
			zap.Int("revenues", len(snap.Revenues)))
		return nil
	case errors.Is(err, types.ErrInvalidData), errors.Is(err, types.ErrDuplicateItem):
		mgr.logger.Warn("stored data is not in the correct format, starting empty", zap.Error(err))
		return mgr.model.Restore(model.Snapshot{})
	default:
		return fmt.Errorf("%w: loading: %v", ErrStorage, err)
	}
}

// Execute parses and runs one line. The model is saved after every command
// that changed it. Parse and execution errors leave the model unchanged.
func (mgr *Manager) Execute(line string) (command.Result, error) {
	cmd, err := mgr.dispatcher.Dispatch(line)
	if err != nil {
		mgr.logger.Debug("parse failed", zap.String("input", line), zap.Error(err))
		return command.Result{}, err
	}

	log := mgr.logger.With(zap.String("command", cmd.Word()))
	res, err := cmd.Execute(mgr.model)
	if err != nil {
		log.Info("command failed", zap.Error(err))
		return command.Result{}, err
	}
	log.Info("command executed", zap.Bool("mutated", res.Mutated), zap.Stringer("tab", res.Tab))

	if res.Mutated {
		if err := mgr.save(); err != nil {
			log.Error("save failed", zap.Error(err))
			return res, err
		}
	}
	return res, nil
}

// Replace swaps the whole model for snap and saves it.
func (mgr *Manager) Replace(snap model.Snapshot) error {
	if err := mgr.model.Restore(snap); err != nil {
		return err
	}
	mgr.logger.Info("data replaced")
	return mgr.save()
}

func (mgr *Manager) save() error {
	if err := mgr.storage.Save(mgr.model.Snapshot()); err != nil {
		return fmt.Errorf("%w: saving: %v", ErrStorage, err)
	}
	return nil
}
