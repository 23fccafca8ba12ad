package history

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one recorded comparison run.
type Run struct {
	// ID is the run identifier (UUID).
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// File1 and File2 are the compared input paths (or object names).
	File1 string `json:"file1"`
	File2 string `json:"file2"`
	// Digest1 and Digest2 are xxh3 content digests of the inputs, so a run
	// can be tied to the exact report revisions it compared.
	Digest1 string `gorm:"size:16" json:"digest1"`
	Digest2 string `gorm:"size:16" json:"digest2"`
	// Keys1 and Keys2 are the instance counts parsed from each file.
	Keys1 int `json:"keys1"`
	Keys2 int `json:"keys2"`
	// Matched, MissingFrom2, MissingFrom1 are the reconciliation counts.
	Matched      int `json:"matched"`
	MissingFrom2 int `json:"missing_from_2"`
	MissingFrom1 int `json:"missing_from_1"`
	// DurationMS is the wall-clock duration of the whole comparison.
	DurationMS int64 `json:"duration_ms"`
	// CreatedAt is set by gorm on insert.
	CreatedAt time.Time `json:"created_at"`
}

// Store persists comparison runs.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an existing gorm connection. Used by tests and by callers
// that manage the connection themselves.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the configured database and migrates the runs table.
// sqlite is the default so the CLI works with zero setup; mysql serves
// shared deployments.
func Open(cfg Config) (*Store, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// Suppress gorm's own logging; the application logger reports failures.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var db *gorm.DB
	var err error
	switch cfg.Driver {
	case "mysql":
		// Special characters in the password must be URL encoded for the
		// mysql DSN.
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		db, err = gorm.Open(mysql.Open(dsn), gormConfig)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported history driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate runs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one run, assigning a UUID if the caller left ID empty.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns one run by ID, or gorm.ErrRecordNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	if err := s.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}
