package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/model"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/service"
	"github.com/stemsi/school-api/internal/validator"
)

type DepartmentHandler struct {
	contentService service.ContentService
}

func NewDepartmentHandler(contentService service.ContentService) *DepartmentHandler {
	return &DepartmentHandler{contentService: contentService}
}

// List godoc
// GET /departments?limit=N
func (h *DepartmentHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c, defaultDepartmentLimit)
	if !ok {
		return
	}

	docs, err := h.contentService.ListDepartments(c.Request.Context(), limit)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, docs)
}

// Create godoc
// POST /departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req model.Department
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.contentService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inserted_id": id})
}
