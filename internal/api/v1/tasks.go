package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devahmed4965/CheckerApp/internal/model"
)

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AssignedTo  uint   `json:"assignedTo" binding:"required"`
}

// CreateTask 创建运营任务
// POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	task := &model.OperationTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskPending,
		CreatedBy:   sess.EmployeeID,
		AssignedTo:  req.AssignedTo,
	}
	if err := h.store.CreateTask(task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建任务失败"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ListTasks 列出指派给当前员工的任务
// GET /api/tasks
func (h *Handler) ListTasks(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		return
	}

	tasks, err := h.store.ListTasksByAssignee(sess.EmployeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询任务失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}
