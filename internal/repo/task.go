package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

const taskColumns = `id, titulo, descricao, data, status`

type TaskRepo struct { // Репозиторий поверх PostgreSQL
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo { // Конструктор
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	t, err := scanTask(r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tarefas
		WHERE id = $1
	`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tarefas
		WHERE ($1::text IS NULL OR titulo = $1)
		  AND ($2::timestamptz IS NULL OR (data >= $2 AND data < $3))
		  AND ($4::smallint IS NULL OR status = $4)
		ORDER BY id
	`

	var (
		start, end *time.Time
		status     *int16
	)
	if filter.Day != nil {
		s, e := model.DayRange(*filter.Day)
		start, end = &s, &e
	}
	if filter.Status != nil {
		v := int16(*filter.Status)
		status = &v
	}

	rows, err := r.pool.Query(ctx, query, filter.Title, start, end, status)
	if err != nil {
		return nil, fmt.Errorf("list tarefas: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	return scanTask(r.pool.QueryRow(ctx, `
		INSERT INTO tarefas (titulo, descricao, data, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+taskColumns,
		t.Title, t.Description, t.Date.UTC(), int16(t.Status)))
}

// Update перезаписывает только заголовок, описание и статус. id и дата не меняются
func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	updated, err := scanTask(r.pool.QueryRow(ctx, `
		UPDATE tarefas
		SET titulo = $2, descricao = $3, status = $4
		WHERE id = $1
		RETURNING `+taskColumns,
		t.ID, t.Title, t.Description, int16(t.Status)))

	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return updated, err
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tarefas WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t      model.Task
		status int16
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Date, &status)
	t.Status = model.Status(status)
	t.Date = t.Date.UTC()
	return t, err
}
