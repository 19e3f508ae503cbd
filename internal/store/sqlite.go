package store

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskmaster/taskmaster-api/internal/models"
)

// sqliteTaskRow is the embedded variant's row model. The DDL defaults mirror
// models.DefaultPriority and the zero completion state; the authoritative
// defaulting happens in models.NewDraft before rows are built.
type sqliteTaskRow struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"not null"`
	Description *string `gorm:"type:text"`
	Priority    int     `gorm:"not null;default:3"`
	UserID      string  `gorm:"not null;index"`
	IsCompleted bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (sqliteTaskRow) TableName() string {
	return "tasks"
}

// SQLiteStore is the embedded, file-backed Gateway implementation.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the database file and ensures the schema
// exists. AutoMigrate is idempotent, so running it on every startup is safe.
// Any failure here is fatal to the caller: the service must not accept
// requests before the schema is in place.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&sqliteTaskRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Create(draft models.Draft) (*models.Task, error) {
	row := sqliteTaskRow{
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

func (s *SQLiteStore) List(filter Filter) ([]models.Task, error) {
	query := s.db.Model(&sqliteTaskRow{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Completed != nil {
		query = query.Where("is_completed = ?", *filter.Completed)
	}

	// Newest first. The id tiebreaker keeps rows created within the same
	// clock tick in insertion order.
	query = query.Order("created_at DESC").Order("id DESC")

	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []sqliteTaskRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]models.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toTask()
	}
	return tasks, nil
}

func (s *SQLiteStore) GetByID(id string) (*models.Task, error) {
	rowID, err := parseSQLiteID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	var row sqliteTaskRow
	if err := s.db.First(&row, "id = ?", rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task := row.toTask()
	return &task, nil
}

func (s *SQLiteStore) Update(id string, patch models.Patch) (*models.Task, error) {
	rowID, err := parseSQLiteID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	res := s.db.Model(&sqliteTaskRow{}).Where("id = ?", rowID).Updates(map[string]any{
		"title":       patch.Title,
		"description": patch.Description,
		"priority":    patch.Priority,
		"updated_at":  time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	return s.GetByID(id)
}

func (s *SQLiteStore) MarkComplete(id string) (*models.Task, error) {
	rowID, err := parseSQLiteID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	res := s.db.Model(&sqliteTaskRow{}).Where("id = ?", rowID).Updates(map[string]any{
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

func (s *SQLiteStore) Delete(id string) error {
	rowID, err := parseSQLiteID(id)
	if err != nil {
		return ErrTaskNotFound
	}

	res := s.db.Delete(&sqliteTaskRow{}, "id = ?", rowID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *SQLiteStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// parseSQLiteID coerces a path identifier to the embedded backend's integer
// key. A non-numeric id cannot match any row.
func parseSQLiteID(id string) (uint64, error) {
	return strconv.ParseUint(id, 10, 64)
}

func (r sqliteTaskRow) toTask() models.Task {
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
