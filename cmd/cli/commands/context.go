package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/webdeveloper7191-del/time-trail-guide-sub014/internal/config"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/db"
	"github.com/webdeveloper7191-del/time-trail-guide-sub014/pkg/postgres"
)

// AppContext holds the application dependencies shared by all commands.
type AppContext struct {
	Ctx    context.Context
	Cfg    *config.Config
	Logger *zap.Logger
	Store  db.Store

	// PG is the concrete store, kept for operations the db interfaces don't
	// cover (migrations).
	PG *postgres.DB
}
