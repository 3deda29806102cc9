package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/onboard/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const migrateLockID int64 = 0x0b0a2d

// model is satisfied by a pointer to any struct embedding Base.
type model[M any] interface {
	*M
	base() *Base
}

// Gorm is a Latest store backed by one table.
type Gorm[T any, M any, PM model[M]] struct {
	db       *gorm.DB
	toModel  func(T) (M, error)
	toRecord func(M) (T, error)
}

func NewGorm[T any, M any, PM model[M]](db *gorm.DB, toModel func(T) (M, error), toRecord func(M) (T, error)) *Gorm[T, M, PM] {
	return &Gorm[T, M, PM]{db: db, toModel: toModel, toRecord: toRecord}
}

// OpenPostgres opens the database and migrates every record table.
func OpenPostgres(dsn string, log *slog.Logger) (*gorm.DB, error) {
	gormLog := gormlogger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := withMigrationLock(db, func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&LocalHireInfoModel{},
			&OnboardingPlanModel{},
			&EtiquetteModel{},
			&WelcomeMessageModel{},
			&ContactDirectoryModel{},
		)
	}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}

// NewGormStores returns database-backed stores for every record kind.
func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		LocalHire:  NewGorm[domain.LocalHireInfo, LocalHireInfoModel](db, MapLocalHireInfoToEntity, MapLocalHireInfoToResponse),
		Onboarding: NewGorm[domain.OnboardingPlan, OnboardingPlanModel](db, MapOnboardingPlanToEntity, MapOnboardingPlanToResponse),
		Etiquette:  NewGorm[domain.Etiquette, EtiquetteModel](db, MapEtiquetteToEntity, MapEtiquetteToResponse),
		Welcome:    NewGorm[domain.WelcomeMessage, WelcomeMessageModel](db, MapWelcomeMessageToEntity, MapWelcomeMessageToResponse),
		Contacts:   NewGorm[domain.ContactDirectory, ContactDirectoryModel](db, MapContactDirectoryToEntity, MapContactDirectoryToResponse),
	}
}

// Replace deletes every row of the table and inserts rec in one transaction.
func (s *Gorm[T, M, PM]) Replace(ctx context.Context, rec T) (T, error) {
	var zero T
	m, err := s.toModel(rec)
	if err != nil {
		return zero, err
	}
	b := PM(&m).base()
	b.ID = NewID()
	b.CreatedAt = time.Now().UTC()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(M)).Error; err != nil {
			return fmt.Errorf("delete previous: %w", err)
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return s.toRecord(m)
}

func (s *Gorm[T, M, PM]) Latest(ctx context.Context) (T, error) {
	var zero T
	m, err := s.latest(s.db.WithContext(ctx))
	if err != nil {
		return zero, err
	}
	return s.toRecord(m)
}

func (s *Gorm[T, M, PM]) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(M)).Error
}

func (s *Gorm[T, M, PM]) DeleteLatest(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.latest(tx)
		if err != nil {
			return err
		}
		return tx.Delete(new(M), "id = ?", PM(&m).base().ID).Error
	})
}

func (s *Gorm[T, M, PM]) latest(db *gorm.DB) (M, error) {
	var m M
	if err := db.Order("created_at DESC").Order("id DESC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, ErrNotFound
		}
		return m, err
	}
	return m, nil
}

func withMigrationLock(db *gorm.DB, fn func(*gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("open sql conn: %w", err)
	}
	defer conn.Close()
	if err := execAdvisory(ctx, conn, "SELECT pg_advisory_lock($1)", migrateLockID); err != nil {
		return fmt.Errorf("acquire migrate lock: %w", err)
	}
	defer func() {
		_ = execAdvisory(ctx, conn, "SELECT pg_advisory_unlock($1)", migrateLockID)
	}()
	return fn(db)
}

func execAdvisory(ctx context.Context, conn *sql.Conn, query string, lockID int64) error {
	_, err := conn.ExecContext(ctx, query, lockID)
	return err
}
