// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desbravaprovas/clubcore/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

const questionOrderingConstraint = "uq_questions_exam_ordering"

// AutoMigrate creates or updates the schema for every model. On Postgres it
// also adds a deferred unique constraint on (exam_id, ordering), checked at
// commit so the in-transaction shifts of AddQuestion and ReorderQuestions may
// pass through duplicate positions.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Club{},
		&model.Unit{},
		&model.RegionalClub{},
		&model.Membership{},
		&model.Exam{},
		&model.Question{},
		&model.AuditLog{},
	); err != nil {
		return err
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if db.Migrator().HasConstraint(&model.Question{}, questionOrderingConstraint) {
		return nil
	}
	err := db.Exec("ALTER TABLE questions ADD CONSTRAINT " + questionOrderingConstraint +
		" UNIQUE (exam_id, ordering) DEFERRABLE INITIALLY DEFERRED").Error
	if err != nil {
		return fmt.Errorf("adding question ordering constraint: %w", err)
	}
	return nil
}

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err came from a unique index.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// lockForUpdate takes a row lock on the given model inside tx.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
