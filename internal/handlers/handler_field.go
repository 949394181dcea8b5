package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/gin-gonic/gin"
)

// fieldHandler serves the site diary and project documents.
type fieldHandler struct {
	dailyLogService portssvc.DailyLogSvcFacade
	documentService portssvc.DocumentSvcFacade
}

func newFieldHandler(ls portssvc.DailyLogSvcFacade, ds portssvc.DocumentSvcFacade) *fieldHandler {
	return &fieldHandler{dailyLogService: ls, documentService: ds}
}

func registerFieldRoutes(rg *gin.RouterGroup, dailyLogService portssvc.DailyLogSvcFacade, documentService portssvc.DocumentSvcFacade) {
	h := newFieldHandler(dailyLogService, documentService)

	projects := rg.Group("/projects/:id")
	{
		projects.GET("/daily-logs", h.listDailyLogs)
		projects.POST("/daily-logs", h.createDailyLog)
		projects.GET("/documents", h.listDocuments)
		projects.POST("/documents", h.createDocument)
	}

	rg.PUT("/daily-logs/:id", h.updateDailyLog)
	rg.DELETE("/daily-logs/:id", h.deleteDailyLog)
	rg.DELETE("/documents/:id", h.deleteDocument)
}

func (h *fieldHandler) listDailyLogs(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	logs, err := h.dailyLogService.ListDailyLogs(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *fieldHandler) createDailyLog(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateDailyLogRequest
	if !bindJSON(c, &req) {
		return
	}
	log, err := h.dailyLogService.CreateDailyLog(c.Request.Context(), user, projectID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *fieldHandler) updateDailyLog(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDailyLogRequest
	if !bindJSON(c, &req) {
		return
	}
	log, err := h.dailyLogService.UpdateDailyLog(c.Request.Context(), user, logID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *fieldHandler) deleteDailyLog(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.dailyLogService.DeleteDailyLog(c.Request.Context(), user, logID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *fieldHandler) listDocuments(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	docs, err := h.documentService.ListDocuments(c.Request.Context(), user, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *fieldHandler) createDocument(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	projectID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}
	doc, err := h.documentService.CreateDocument(c.Request.Context(), user, projectID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *fieldHandler) deleteDocument(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	docID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.documentService.DeleteDocument(c.Request.Context(), user, docID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
