package service

import (
	"context"
	"errors"
	"time"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
	"github.com/BuzzLyutic/tarefa-api/internal/repo"
)

const MsgDateRequired = "A data da tarefa não pode ser vazia"

var (
	ErrValidation = errors.New("validation error")
)

// ValidationError несет текст для клиента и сводится к ErrValidation через errors.Is
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Get возвращает задачу по id или repo.ErrorNotFound
func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) ListAll(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, model.TaskFilter{})
}

func (s *TaskService) ListByTitle(ctx context.Context, title string) ([]model.Task, error) {
	return s.repo.List(ctx, model.TaskFilter{Title: &title})
}

// ListByDate сравнивает только календарный день, время суток игнорируется
func (s *TaskService) ListByDate(ctx context.Context, date time.Time) ([]model.Task, error) {
	return s.repo.List(ctx, model.TaskFilter{Day: &date})
}

func (s *TaskService) ListByStatus(ctx context.Context, status model.Status) ([]model.Task, error) {
	return s.repo.List(ctx, model.TaskFilter{Status: &status})
}

func (s *TaskService) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if err := s.validate(t); err != nil { // Валидация до любой записи в хранилище
		return t, err
	}

	t.ID = 0 // id назначает хранилище
	return s.repo.Create(ctx, t)
}

func (s *TaskService) Update(ctx context.Context, id int64, t model.Task) (model.Task, error) {
	stored, err := s.repo.Get(ctx, id)
	if err != nil {
		return t, err
	}

	if err := s.validate(t); err != nil {
		return stored, err
	}

	// Меняем только заголовок, описание и статус. id и сохраненная дата остаются прежними
	stored.Title = t.Title
	stored.Description = t.Description
	stored.Status = t.Status

	return s.repo.Update(ctx, stored)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) validate(t model.Task) error {
	if t.Date.IsZero() {
		return &ValidationError{Msg: MsgDateRequired}
	}
	if !t.Status.Valid() {
		return &ValidationError{Msg: "status inválido"}
	}
	return nil
}
