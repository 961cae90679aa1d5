package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-registry/internal/model"
	"github.com/BuzzLyutic/task-registry/internal/service"
	"github.com/BuzzLyutic/task-registry/pkg/respond"
)

const msgDeleted = "Task successfully deleted"

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

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter model.TaskFilter
	if completed := q.Get("completed"); completed != "" {
		done := completed == "true"
		filter.Completed = &done
	}
	if q.Get("sortBy") == "createdAt" {
		filter.SortByCreatedAt = true
		filter.Order = model.OrderAsc
		if q.Get("order") == string(model.OrderDesc) {
			filter.Order = model.OrderDesc
		}
	}

	tasks, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		h.logger.Error("failed to decode body", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tasks/%d", task.ID))
	respond.JSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	in, err := decodeInput(r)
	if err != nil {
		h.logger.Error("failed to decode body", zap.Error(err), zap.Int64("task_id", id))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	task, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Message(w, r, http.StatusOK, msgDeleted)
}

func (h *TaskHandler) ListByPriority(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListByPriority(r.Context(), chi.URLParam(r, "level"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *service.ValidationError
		nf *service.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		respond.Error(w, r, http.StatusBadRequest, ve.Message)
	case errors.As(err, &nf):
		respond.Error(w, r, http.StatusNotFound, nf.Message)
	default:
		h.logger.Error("internal error", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

// decodeInput reads the task fields from a JSON or urlencoded body.
// An empty body yields an empty input, which then fails validation on title.
func decodeInput(r *http.Request) (model.TaskInput, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return model.TaskInput{}, err
		}
		return model.TaskInput{
			Title:       formValue(r, "title"),
			Description: formValue(r, "description"),
			Completed:   formValue(r, "completed"),
			Priority:    formValue(r, "priority"),
		}, nil
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return model.TaskInput{}, err
	}
	return model.TaskInput{
		Title:       body["title"],
		Description: body["description"],
		Completed:   body["completed"],
		Priority:    body["priority"],
	}, nil
}

// formValue returns nil for a missing field so it reads the same as an
// absent JSON field.
func formValue(r *http.Request, key string) any {
	if vs, ok := r.PostForm[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return nil
}
