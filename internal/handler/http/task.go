package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/task"
	"github.com/distrohub/distro-backend-go/internal/handler/http/middleware"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		slog.Error("Task list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// ListMine implements TaskHandler.
func (h *TaskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	tasks, err := h.taskService.ListByAssignee(r.Context(), actor.ID)
	if err != nil {
		slog.Error("Task list mine service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, tasks)
}

// Get implements TaskHandler.
func (h *TaskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.taskService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Task get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Task create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Task create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	t, err := h.taskService.Create(r.Context(), createReq, actor.ID)
	if err != nil {
		slog.Error("Task create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task created", "task_id", t.ID)
	response.Created(w, "Task created successfully", t)
}

// UpdateStatus implements TaskHandler.
func (h *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq task.UpdateTaskStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Task status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := statusReq.Validate(); err != nil {
		slog.Error("Task status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.taskService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), statusReq); err != nil {
		slog.Error("Task status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task status updated successfully", nil)
}

// CheckIn implements TaskHandler.
func (h *TaskHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var checkInReq task.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("Task check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := checkInReq.Validate(); err != nil {
		slog.Error("Task check-in validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	t, err := h.taskService.CheckIn(r.Context(), chi.URLParam(r, "id"), actor.ID, checkInReq)
	if err != nil {
		slog.Error("Task check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task check-in recorded", "task_id", t.ID, "user_id", actor.ID)
	response.SuccessWithMessage(w, "Check-in recorded successfully", t)
}
