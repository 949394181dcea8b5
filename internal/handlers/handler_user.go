package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/SscSPs/fieldflow_pm/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler serves user administration and the caller's company profile.
// Users always leave this handler as dto.UserResponse so the password hash never does.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	companyService portssvc.CompanySvcFacade
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, companyService portssvc.CompanySvcFacade) {
	h := &userHandler{userService: userService, companyService: companyService}

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.PUT("/:id", h.updateUser)
	}

	rg.GET("/company", h.getCompany)
	rg.PUT("/company", h.updateCompany)
}

func (h *userHandler) listUsers(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	users, err := h.userService.ListUsers(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *userHandler) createUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.userService.CreateUser(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User created via API",
		slog.Int64("user_id", created.ID), slog.String("role", string(created.Role)))
	c.JSON(http.StatusCreated, dto.ToUserResponse(created))
}

func (h *userHandler) updateUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.userService.UpdateUser(c.Request.Context(), user, userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

func (h *userHandler) getCompany(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	company, err := h.companyService.GetCompany(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *userHandler) updateCompany(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	company, err := h.companyService.UpdateCompany(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
