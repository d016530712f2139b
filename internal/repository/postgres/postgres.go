package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles every repository over one connection pool. It owns the pool:
// open it once at startup with Open and release it with Close.
type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CategoryRepository
	repository.SubcategoryRepository
	repository.EquipmentRepository
	repository.ReservationRepository
	repository.EquipmentReviewRepository
	repository.UserReviewRepository
}

// PoolOptions tunes the connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// nullID stores an unset (zero) reference as NULL. Reads COALESCE NULL back
// to zero, so an orphaned row can be written back unchanged.
func nullID(id int32) sql.NullInt32 {
	return sql.NullInt32{Int32: id, Valid: id != 0}
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		UserRepository:            NewUserRepository(db),
		CategoryRepository:        NewCategoryRepository(db),
		SubcategoryRepository:     NewSubcategoryRepository(db),
		EquipmentRepository:       NewEquipmentRepository(db),
		ReservationRepository:     NewReservationRepository(db),
		EquipmentReviewRepository: NewEquipmentReviewRepository(db),
		UserReviewRepository:      NewUserReviewRepository(db),
	}
}

// Open connects to PostgreSQL, verifies the connection and returns a ready Store.
func Open(ctx context.Context, dsn string, opts PoolOptions) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database connection established")
	return NewStore(db), nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	logger.Info("Closing database connection pool")
	return s.db.Close()
}
