package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/core/service"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Login handles POST /adminLogin
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	ok, err := h.adminService.Login(c.Request.Context(), req.AdminName, req.AdminPass)
	if err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, dto.MessageResponse{
			Code:    dto.CodeFail,
			Message: "admin credentials do not match",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Code:    dto.CodeOK,
		Message: "login succeeded",
	})
}
