package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/middleware"
	"staffhub/internal/model"
	"staffhub/internal/service"
	"staffhub/pkg/util"
)

// UserHandler handles staff-account HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new User handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Role       string `json:"role" binding:"required"`
	Department string `json:"department" binding:"required"`
	Firstname  string `json:"firstname" binding:"required"`
	Lastname   string `json:"lastname" binding:"required"`
	NIC        string `json:"nic" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile" binding:"required"`
	Password   string `json:"password" binding:"required"`
	ImageURL   string `json:"imageUrl"`
	RefNo      string `json:"refNo"`
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	roleID, err := util.ParseObjectID(req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	departmentID, err := util.ParseObjectID(req.Department)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &model.User{
		Role:       roleID,
		Department: departmentID,
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		NIC:        req.NIC,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Password:   req.Password,
		ImageURL:   req.ImageURL,
		RefNo:      req.RefNo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("User created", user))
}

type updateUserRequest struct {
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Firstname  *string `json:"firstname"`
	Lastname   *string `json:"lastname"`
	NIC        *string `json:"nic"`
	Email      *string `json:"email"`
	Mobile     *string `json:"mobile"`
	Password   *string `json:"password"`
	ImageURL   *string `json:"imageUrl"`
	RefNo      *string `json:"refNo"`
	Active     *bool   `json:"active"`
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	update := model.UserUpdate{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		NIC:       req.NIC,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  req.Password,
		ImageURL:  req.ImageURL,
		RefNo:     req.RefNo,
		Active:    req.Active,
	}
	if req.Role != nil {
		roleID, err := util.ParseObjectID(*req.Role)
		if err != nil {
			respondError(c, err)
			return
		}
		update.Role = &roleID
	}
	if req.Department != nil {
		departmentID, err := util.ParseObjectID(*req.Department)
		if err != nil {
			respondError(c, err)
			return
		}
		update.Department = &departmentID
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("User not found", ""))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("User updated", user))
}

// Archive handles DELETE /users/:id (soft delete)
func (h *UserHandler) Archive(c *gin.Context) {
	user, err := h.userService.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("User not found", ""))
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("User archived", nil))
}

// Query handles POST /users/query (paged listing)
func (h *UserHandler) Query(c *gin.Context) {
	var query model.UserListQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	result, err := h.userService.ListPaged(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me handles GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	view, err := h.userService.GetLoggedUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("User not found", ""))
		return
	}

	c.JSON(http.StatusOK, view)
}
