package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: notificationService}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread", h.listUnread)
		notifications.PUT("/read-all", h.markAllRead)
		notifications.PUT("/:id/read", h.markRead)
	}
}

func (h *notificationHandler) listNotifications(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *notificationHandler) listUnread(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	notifications, err := h.notificationService.ListUnreadNotifications(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *notificationHandler) markRead(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	notificationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.notificationService.MarkRead(c.Request.Context(), user, notificationID); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}

func (h *notificationHandler) markAllRead(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}
