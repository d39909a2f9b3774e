package api

import (
	"net/http"

	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/service"
)

// TaskHandler handles the owner-scoped task endpoints.
type TaskHandler struct {
	tasks service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /tasks. The response is always a JSON array.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, db, ok := requestUserAndDB(w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(r.Context(), db, user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponses(tasks))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, db, ok := requestUserAndDB(w, r)
	if !ok {
		return
	}

	input, ok := decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Create(r.Context(), db, user, input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// Update handles PUT /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, db, ok := requestUserAndDB(w, r)
	if !ok {
		return
	}

	id, err := pathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	input, ok := decodeTaskInput(w, r)
	if !ok {
		return
	}

	task, err := h.tasks.Update(r.Context(), db, user, id, input)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, db, ok := requestUserAndDB(w, r)
	if !ok {
		return
	}

	id, err := pathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), db, user, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: shared.MsgTaskDeleted})
}

func decodeTaskInput(w http.ResponseWriter, r *http.Request) (service.TaskInput, bool) {
	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return service.TaskInput{}, false
	}

	deadline, err := domain.ParseDate(req.Deadline)
	if err != nil {
		HandleAPIError(w, r, err)
		return service.TaskInput{}, false
	}

	status, err := domain.ParseTaskStatus(req.Status)
	if err != nil {
		HandleAPIError(w, r, err)
		return service.TaskInput{}, false
	}

	return service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		Status:      status,
	}, true
}
