package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/model"
	"staffhub/internal/repository"
)

// DirectoryHandler serves the department and role collections the user
// listings join against.
type DirectoryHandler struct {
	departments repository.IDepartmentRepository
	roles       repository.IRoleRepository
}

func NewDirectoryHandler(departments repository.IDepartmentRepository, roles repository.IRoleRepository) *DirectoryHandler {
	return &DirectoryHandler{departments: departments, roles: roles}
}

// ListDepartments handles GET /departments
func (h *DirectoryHandler) ListDepartments(c *gin.Context) {
	deps, err := h.departments.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deps)
}

type createNamedRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateDepartment handles POST /departments
func (h *DirectoryHandler) CreateDepartment(c *gin.Context) {
	var req createNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	dep, err := h.departments.Create(c.Request.Context(), &model.Department{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Department created", dep))
}

// ListRoles handles GET /roles
func (h *DirectoryHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// CreateRole handles POST /roles
func (h *DirectoryHandler) CreateRole(c *gin.Context) {
	var req createNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	role, err := h.roles.Create(c.Request.Context(), &model.Role{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Role created", role))
}
