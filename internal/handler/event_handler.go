package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/model"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/service"
	"github.com/stemsi/school-api/internal/validator"
)

type EventHandler struct {
	contentService service.ContentService
}

func NewEventHandler(contentService service.ContentService) *EventHandler {
	return &EventHandler{contentService: contentService}
}

// List godoc
// GET /events?limit=N&upcoming=bool
// upcoming defaults to true.
func (h *EventHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, defaultEventLimit)
	if !ok {
		return
	}
	upcoming, ok := queryBool(c, "upcoming", true)
	if !ok {
		return
	}

	docs, err := h.contentService.ListEvents(c.Request.Context(), upcoming, limit)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// Create godoc
// POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req model.Event
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.contentService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inserted_id": id})
}
