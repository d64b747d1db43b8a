package repo

import (
	"context"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами.
// Каждый метод - одна атомарная операция с автокоммитом
type TaskRepository interface {
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}
