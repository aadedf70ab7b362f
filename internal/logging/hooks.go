package logging

import (
	"log/slog"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// DebugHooks logs every terminal event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(e *domain.CommandEvent) {
			if e.Found {
				logger.Debug("Command", "session_id", e.SessionID, "name", e.Name, "args", e.Args)
			} else {
				logger.Debug("Command (Not Found)", "session_id", e.SessionID, "name", e.Name)
			}
		},
		OnClear: func(e *domain.ClearEvent) {
			logger.Debug("Clear", "session_id", e.SessionID, "discarded", e.Discarded)
		},
	}
}
