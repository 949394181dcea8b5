package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests for projects and their schedule.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
	taskService    portssvc.TaskSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade, ts portssvc.TaskSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps, taskService: ts}
}

// registerProjectRoutes registers project and task routes.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, taskService portssvc.TaskSvcFacade) {
	h := newProjectHandler(projectService, taskService)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", h.createProject)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)

		projects.GET("/:id/tasks", h.listTasks)
		projects.POST("/:id/tasks", h.createTask)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

func (h *projectHandler) listProjects(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projects, err := h.projectService.ListProjects(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *projectHandler) getProject(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	project, err := h.projectService.GetProject(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) createProject(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.CreateProject(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Project created via API", slog.Int64("project_id", project.ID))
	c.JSON(http.StatusCreated, project)
}

func (h *projectHandler) updateProject(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.UpdateProject(c.Request.Context(), user, projectID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) deleteProject(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(c.Request.Context(), user, projectID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *projectHandler) listTasks(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	tasks, err := h.taskService.ListTasks(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *projectHandler) createTask(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), user, projectID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *projectHandler) updateTask(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.UpdateTask(c.Request.Context(), user, taskID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *projectHandler) deleteTask(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	taskID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), user, taskID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
