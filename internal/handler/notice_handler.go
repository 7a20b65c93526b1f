package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/model"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/service"
	"github.com/stemsi/school-api/internal/validator"
)

type NoticeHandler struct {
	contentService service.ContentService
}

func NewNoticeHandler(contentService service.ContentService) *NoticeHandler {
	return &NoticeHandler{contentService: contentService}
}

// List godoc
// GET /notices?limit=N
func (h *NoticeHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, defaultNoticeLimit)
	if !ok {
		return
	}

	docs, err := h.contentService.ListNotices(c.Request.Context(), limit)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// Create godoc
// POST /notices
func (h *NoticeHandler) Create(c *gin.Context) {
	var req model.Notice
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.contentService.CreateNotice(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inserted_id": id})
}
