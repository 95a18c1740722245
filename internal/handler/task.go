package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/service"
	"github.com/BuzzLyutic/task-store-api/pkg/respond"
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

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Task
	if err := decodeBody(r, &req); err != nil {
		h.logger.Debug("failed to decode task", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tasks/%d", task.ID))
	respond.JSON(w, r, http.StatusCreated, task)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

// Update сохраняет задачу по id из тела запроса, а не из пути.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Task
	if err := decodeBody(r, &req); err != nil {
		h.logger.Debug("failed to decode task", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.service.Update(r.Context(), req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
