package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/model"
	"github.com/BuzzLyutic/task-store-api/internal/service"
	"github.com/BuzzLyutic/task-store-api/pkg/respond"
)

type UserHandler struct {
	service *service.UserService
	logger  *zap.Logger
}

func NewUserHandler(srv *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.User
	if err := decodeBody(r, &req); err != nil {
		h.logger.Debug("failed to decode user", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	respond.JSON(w, r, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, users)
}

// Update: id в пути проверяется только на формат, ключом служит id из тела.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := parseID(r); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	var req model.User
	if err := decodeBody(r, &req); err != nil {
		h.logger.Debug("failed to decode user", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Update(r.Context(), req)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
