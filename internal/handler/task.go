package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/tarefa-api/internal/model"
	"github.com/BuzzLyutic/tarefa-api/internal/repo"
	"github.com/BuzzLyutic/tarefa-api/internal/service"
	"github.com/BuzzLyutic/tarefa-api/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

// Routes монтирует ресурс /Tarefa
func (h *TaskHandler) Routes(r chi.Router) {
	r.Route("/Tarefa", func(r chi.Router) {
		r.Get("/ObterTodos", h.ListAll)
		r.Get("/ObterPorTitulo", h.ListByTitle)
		r.Get("/ObterPorData", h.ListByDate)
		r.Get("/ObterPorStatus", h.ListByStatus)

		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// taskRequest - тело POST/PUT. Дата приходит строкой, чтобы принимать и формат без зоны
type taskRequest struct {
	Title       string       `json:"titulo"`
	Description string       `json:"descricao"`
	Date        string       `json:"data"`
	Status      model.Status `json:"status"`
}

func (req taskRequest) toModel() (model.Task, error) {
	t := model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.Date == "" { // пустая дата = нулевое значение, отсекается валидацией сервиса
		return t, nil
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return t, err
	}
	t.Date = date
	return t, nil
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListAll(r.Context())
	h.respondList(w, r, tasks, err)
}

func (h *TaskHandler) ListByTitle(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListByTitle(r.Context(), r.URL.Query().Get("titulo"))
	h.respondList(w, r, tasks, err)
}

// ListByDate без параметра data ищет по нулевой дате, как при биндинге по умолчанию
func (h *TaskHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if q := r.URL.Query(); q.Has("data") {
		parsed, err := model.ParseDate(q.Get("data"))
		if err != nil {
			respond.Error(w, r, http.StatusBadRequest, "data inválida")
			return
		}
		date = parsed
	}

	tasks, err := h.service.ListByDate(r.Context(), date)
	h.respondList(w, r, tasks, err)
}

// ListByStatus без параметра status ищет Pendente (нулевое значение перечисления)
func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := model.StatusPending
	if q := r.URL.Query(); q.Has("status") {
		parsed, err := model.ParseStatus(q.Get("status"))
		if err != nil {
			respond.Error(w, r, http.StatusBadRequest, "status inválido")
			return
		}
		status = parsed
	}

	tasks, err := h.service.ListByStatus(r.Context(), status)
	h.respondList(w, r, tasks, err)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "corpo da requisição vazio")
		return
	}

	req, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/Tarefa/%d", task.ID))
	h.writeJSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	task, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Empty(w, r, http.StatusNoContent)
}

func (h *TaskHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "id inválido")
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) decodeTask(w http.ResponseWriter, r *http.Request) (model.Task, bool) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("json inválido: %v", err))
		return model.Task{}, false
	}

	task, err := req.toModel()
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "data inválida")
		return model.Task{}, false
	}
	return task, true
}

func (h *TaskHandler) respondList(w http.ResponseWriter, r *http.Request, tasks []model.Task, err error) {
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	h.writeJSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Empty(w, r, http.StatusNotFound)
	case errors.As(err, &vErr):
		respond.Error(w, r, http.StatusBadRequest, vErr.Msg)
	default:
		h.logger.Error("internal error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON пишет ответ; ошибка кодирования уже не может поменять статус, только логируем
func (h *TaskHandler) writeJSON(w http.ResponseWriter, r *http.Request, code int, data any) {
	if err := respond.JSON(w, r, code, data); err != nil {
		h.logger.Debug("failed to encode response",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}
