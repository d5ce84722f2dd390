// Package devstore is an in-memory implementation of the remote store's
// HTTP contract, for tests and local development. It is a double, not the
// real storage engine: records live in a throwaway sqlite database and die
// with the process.
package devstore

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/workforce-management/internal/transport"
)

type Server struct {
	DB     *gorm.DB
	router *chi.Mux
}

func New(lg *slog.Logger) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}

	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&User{}, &Organization{}, &Employee{}, &Assignment{}, &EmployeeAssignment{}); err != nil {
		return nil, fmt.Errorf("migrate in-memory store: %w", err)
	}

	handler := NewHandler(transport.NewBaseHandler(lg), db)
	return &Server{DB: db, router: NewRouter(handler)}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}
