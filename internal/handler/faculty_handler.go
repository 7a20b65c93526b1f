package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/model"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/service"
	"github.com/stemsi/school-api/internal/validator"
)

type FacultyHandler struct {
	contentService service.ContentService
}

func NewFacultyHandler(contentService service.ContentService) *FacultyHandler {
	return &FacultyHandler{contentService: contentService}
}

// List godoc
// GET /faculty?limit=N&department=D
func (h *FacultyHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, defaultFacultyLimit)
	if !ok {
		return
	}

	docs, err := h.contentService.ListFaculty(c.Request.Context(), c.Query("department"), limit)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// Create godoc
// POST /faculty
func (h *FacultyHandler) Create(c *gin.Context) {
	var req model.Faculty
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.contentService.CreateFaculty(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inserted_id": id})
}
