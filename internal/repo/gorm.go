package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
)

// tarefaRecord - строка таблицы tarefas в представлении ORM
type tarefaRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Titulo    string    `gorm:"not null;default:'';index"`
	Descricao string    `gorm:"not null;default:''"`
	Data      time.Time `gorm:"not null;index"`
	Status    int       `gorm:"not null;default:0;index"`
}

func (tarefaRecord) TableName() string {
	return "tarefas"
}

func toRecord(t model.Task) tarefaRecord {
	return tarefaRecord{
		ID:        t.ID,
		Titulo:    t.Title,
		Descricao: t.Description,
		Data:      t.Date.UTC(),
		Status:    int(t.Status),
	}
}

func (rec tarefaRecord) toModel() model.Task {
	return model.Task{
		ID:          rec.ID,
		Title:       rec.Titulo,
		Description: rec.Descricao,
		Date:        rec.Data.UTC(),
		Status:      model.Status(rec.Status),
	}
}

// OpenGorm открывает SQLite через gorm и накатывает схему
func OpenGorm(dsn string, log *zap.Logger) (*gorm.DB, error) {
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  dbLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&tarefaRecord{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return db, nil
}

// ensureDirForSQLite создает каталог под файл БД, если его нет
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}

type GormTaskRepo struct { // Репозиторий поверх ORM
	db *gorm.DB
}

func NewGormTaskRepo(db *gorm.DB) *GormTaskRepo {
	return &GormTaskRepo{db: db}
}

func (r *GormTaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	var rec tarefaRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, ErrorNotFound
		}
		return model.Task{}, fmt.Errorf("find tarefa: %w", err)
	}
	return rec.toModel(), nil
}

func (r *GormTaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&tarefaRecord{})
	if filter.Title != nil {
		q = q.Where("titulo = ?", *filter.Title)
	}
	if filter.Day != nil {
		start, end := model.DayRange(*filter.Day)
		q = q.Where("data >= ? AND data < ?", start, end)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", int(*filter.Status))
	}

	var recs []tarefaRecord
	if err := q.Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tarefas: %w", err)
	}

	tasks := make([]model.Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, rec.toModel())
	}
	return tasks, nil
}

func (r *GormTaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	rec := toRecord(t)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return t, fmt.Errorf("create tarefa: %w", err)
	}
	return rec.toModel(), nil
}

// Update перезаписывает только заголовок, описание и статус. id и дата не меняются
func (r *GormTaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	result := r.db.WithContext(ctx).Model(&tarefaRecord{}).Where("id = ?", t.ID).
		Select("titulo", "descricao", "status").
		Updates(map[string]any{
			"titulo":    t.Title,
			"descricao": t.Description,
			"status":    int(t.Status),
		})
	if err := result.Error; err != nil {
		return t, fmt.Errorf("update tarefa: %w", err)
	}
	if result.RowsAffected == 0 {
		return t, ErrorNotFound
	}
	return r.Get(ctx, t.ID)
}

func (r *GormTaskRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&tarefaRecord{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("delete tarefa: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrorNotFound
	}
	return nil
}
