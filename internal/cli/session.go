package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/homebiz/internal/logging"
	"github.com/mesh-intelligence/homebiz/internal/logic"
	"github.com/mesh-intelligence/homebiz/internal/model"
	"github.com/mesh-intelligence/homebiz/internal/sqlite"
)

// session is an attached backend plus a loaded manager.
type session struct {
	backend *sqlite.Backend
	manager *logic.Manager
	logger  *zap.Logger
}

// openSession resolves configuration, attaches storage and loads the model.
func openSession() (*session, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, sysError(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, sysError(err)
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach storage: %w", err))
	}
	logger.Debug("storage attached", zap.String("data_dir", cfg.DataDir))

	mgr := logic.New(model.New(), backend, logger)
	if err := mgr.Load(); err != nil {
		backend.Detach()
		return nil, sysError(err)
	}

	return &session{backend: backend, manager: mgr, logger: logger}, nil
}

// Close detaches storage and flushes the logger.
func (s *session) Close() error {
	_ = s.logger.Sync()
	return s.backend.Detach()
}
