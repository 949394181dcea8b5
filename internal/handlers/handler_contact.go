package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
	"github.com/gin-gonic/gin"
)

type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}

	contacts := rg.Group("/contacts")
	{
		contacts.GET("", h.listContacts)
		contacts.POST("", h.createContact)
		contacts.PUT("/:id", h.updateContact)
		contacts.DELETE("/:id", h.deleteContact)
	}
}

// listContacts returns the caller's company address book, optionally filtered by ?type=.
func (h *contactHandler) listContacts(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	var params dto.ListContactsParams
	if !bindQuery(c, &params) {
		return
	}
	contacts, err := h.contactService.ListContacts(c.Request.Context(), user, params.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *contactHandler) createContact(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	var req dto.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	contact, err := h.contactService.CreateContact(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *contactHandler) updateContact(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	contactID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}
	contact, err := h.contactService.UpdateContact(c.Request.Context(), user, contactID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *contactHandler) deleteContact(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	contactID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.contactService.DeleteContact(c.Request.Context(), user, contactID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
