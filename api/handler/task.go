package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentortrack/backend/api/transport"
	"github.com/mentortrack/backend/domain"
	"github.com/mentortrack/backend/pkg/httpcontext"
	taskUC "github.com/mentortrack/backend/usecase/task"
)

const deadlineLayout = "2006-01-02"

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Create handles POST /api/tasks/create.
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Title == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(deadlineLayout, req.Deadline)
		if err != nil {
			h.respondInvalid(ctx, "deadline must be YYYY-MM-DD")
			return
		}
		deadline = &parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, actor, taskUC.CreateInput{
		MentorshipID: req.MentorshipID,
		Title:        req.Title,
		Description:  req.Description,
		Deadline:     deadline,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondResult(ctx, http.StatusOK, "Task created successfully", map[string]interface{}{
		"task_id": created.ID,
	})
}

// UpdateStatus handles POST /api/tasks/{id}/update-status.
func (h *TaskHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	taskID, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "invalid task id")
		return
	}

	var req transport.TaskStatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateStatus(stdCtx, actor, taskID, domain.TaskStatus(req.Status)); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondResult(ctx, http.StatusOK, "Task status updated", nil)
}

// List handles GET /api/mentorships/{id}/tasks.
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	actor, ok := h.actor(ctx)
	if !ok {
		return
	}

	mentorshipID, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "invalid mentorship id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListForMentorship(stdCtx, actor, mentorshipID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondResult(ctx, http.StatusOK, "", tasks)
}

func pathID(ctx *fasthttp.RequestCtx, name string) (int64, bool) {
	raw, _ := ctx.UserValue(name).(string)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
