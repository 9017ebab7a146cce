package repository

import (
	"database/sql"
	"fmt"

	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/config"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB *sql.DB

	Promotion PromotionRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:        db,
		Promotion: NewPromotionRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
