package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/taskmaster/taskmaster-api/internal/config"
	"github.com/taskmaster/taskmaster-api/internal/models"
)

// pgTaskRow is the hosted variant's row model. Ids are opaque uuid strings
// assigned at insertion.
type pgTaskRow struct {
	ID          string  `gorm:"type:uuid;primaryKey"`
	Title       string  `gorm:"not null"`
	Description *string `gorm:"type:text"`
	Priority    int     `gorm:"not null;default:3"`
	UserID      string  `gorm:"not null;index"`
	IsCompleted bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (pgTaskRow) TableName() string {
	return "tasks"
}

// PostgresStore is the hosted Gateway implementation backed by a Supabase
// Postgres database. When the startup connection fails, db stays nil and
// every operation fails fast with ErrStoreUnavailable instead of risking a
// confusing downstream error mid-request.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to the hosted database. A failed connection does
// not abort the process; the dial error (which can embed the DSN) is logged
// and never surfaced to clients.
func NewPostgresStore(cfg *config.Config, logger *log.Logger) *PostgresStore {
	dsn := supabaseDSN(cfg.SupabaseURL, cfg.SupabaseKey)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		logger.Error("supabase connection failed, task operations will be rejected", "err", err)
		return &PostgresStore{}
	}

	logger.Info("supabase connection established")
	return &PostgresStore{db: db}
}

// NewPostgresStoreWithDB wraps an existing connection. Used by tests.
func NewPostgresStoreWithDB(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// supabaseDSN composes the keyword DSN for a Supabase project: the endpoint
// URL names the database host and the service key is the database password.
func supabaseDSN(url, key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "postgres://")
	host = strings.TrimSuffix(host, "/")
	return fmt.Sprintf("host=%s port=5432 user=postgres password=%s dbname=postgres sslmode=require", host, key)
}

func (s *PostgresStore) Create(draft models.Draft) (*models.Task, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	row := pgTaskRow{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		UserID:      draft.UserID,
	}

	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	task := row.toTask()
	return &task, nil
}

func (s *PostgresStore) List(filter Filter) ([]models.Task, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	query := s.db.Model(&pgTaskRow{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Completed != nil {
		query = query.Where("is_completed = ?", *filter.Completed)
	}

	query = query.Order("created_at DESC")

	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []pgTaskRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]models.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toTask()
	}
	return tasks, nil
}

func (s *PostgresStore) GetByID(id string) (*models.Task, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	var row pgTaskRow
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task := row.toTask()
	return &task, nil
}

func (s *PostgresStore) Update(id string, patch models.Patch) (*models.Task, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	res := s.db.Model(&pgTaskRow{}).Where("id = ?", id).Updates(map[string]any{
		"title":       patch.Title,
		"description": patch.Description,
		"priority":    patch.Priority,
		"updated_at":  time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update task: %w", res.Error)
	}
	// The hosted store reports zero affected rows instead of an error when
	// the id did not match.
	if res.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	return s.GetByID(id)
}

func (s *PostgresStore) MarkComplete(id string) (*models.Task, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	res := s.db.Model(&pgTaskRow{}).Where("id = ?", id).Updates(map[string]any{
		"is_completed": true,
		"updated_at":   time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to complete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	return s.GetByID(id)
}

func (s *PostgresStore) Delete(id string) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}

	res := s.db.Delete(&pgTaskRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *PostgresStore) Ping() error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (r pgTaskRow) toTask() models.Task {
	return models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		UserID:      r.UserID,
		IsCompleted: r.IsCompleted,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
