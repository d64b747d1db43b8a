package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
)

// MemoryTaskRepo хранит задачи в памяти процесса. Для тестов и драйвера memory
type MemoryTaskRepo struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]model.Task
}

func NewMemoryTaskRepo() *MemoryTaskRepo {
	return &MemoryTaskRepo{
		tasks: make(map[int64]model.Task),
	}
}

func (r *MemoryTaskRepo) Get(_ context.Context, id int64) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, ErrorNotFound
	}
	return t, nil
}

func (r *MemoryTaskRepo) List(_ context.Context, filter model.TaskFilter) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Matches(t) {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *MemoryTaskRepo) Create(_ context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	t.Date = t.Date.UTC()
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryTaskRepo) Update(_ context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tasks[t.ID]
	if !ok {
		return t, ErrorNotFound
	}
	stored.Title = t.Title
	stored.Description = t.Description
	stored.Status = t.Status
	r.tasks[t.ID] = stored
	return stored, nil
}

func (r *MemoryTaskRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrorNotFound
	}
	delete(r.tasks, id)
	return nil
}
