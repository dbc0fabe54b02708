package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/taskradar/internal/pkg/errcode"
	"github.com/xxxsen/taskradar/internal/pkg/geo"
	"github.com/xxxsen/taskradar/internal/pkg/response"
	"github.com/xxxsen/taskradar/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type taskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *int64     `json:"due_date"`
	Priority    string     `json:"priority"`
	Location    *geo.Point `json:"location"`
}

func (r taskRequest) toInput() service.TaskInput {
	return service.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Location:    r.Location,
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), getUserID(c), req.toInput())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), getUserID(c), c.Param("id"), req.toInput())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, task)
}

type completeRequest struct {
	Completed bool `json:"completed"`
}

func (h *TaskHandler) Complete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	if err := h.tasks.SetCompleted(c.Request.Context(), getUserID(c), c.Param("id"), req.Completed); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), getUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), getUserID(c), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"tasks": tasks})
}

func (h *TaskHandler) Summary(c *gin.Context) {
	summary, err := h.tasks.Summary(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, summary)
}
