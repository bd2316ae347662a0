package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/service"
)

const bearerPrefix = "Bearer "

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(dto.StatusFailure, dto.LoginFailureResponse{
			Code:    dto.CodeFail,
			Error:   err.Error(),
			Message: "login failed",
		})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(dto.StatusFailure, dto.LoginFailureResponse{
			Code:    dto.CodeFail,
			Error:   err.Error(),
			Message: "login failed",
		})
		return
	}

	resp := dto.LoginResponse{Code: dto.CodeOK}
	switch result.Outcome {
	case domain.LoginAuthenticated:
		resp.Message = "success"
		resp.Token = result.Token
	case domain.LoginWrongPassword:
		resp.Message = "bad password"
	default:
		resp.Message = "not registered"
	}

	c.JSON(http.StatusOK, resp)
}

// Status handles POST /login/status. The token is read from the body and,
// when absent there, from a Bearer Authorization header.
func (h *AuthHandler) Status(c *gin.Context) {
	var req dto.StatusRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	token := req.Token
	if token == "" {
		token = bearerToken(c)
	}

	session := h.authService.Status(token)
	switch session.State {
	case domain.SessionAuthenticated:
		c.JSON(http.StatusOK, dto.StatusResponse{
			Code:     dto.CodeOK,
			Username: session.Username,
			UserID:   session.UserID,
		})
	case domain.SessionExpired:
		c.JSON(http.StatusOK, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: "session expired",
		})
	default:
		msg := "invalid token"
		if session.Err != nil {
			msg = session.Err.Error()
		}
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: msg,
		})
	}
}

// Logout handles POST /logout. Tokens are stateless, so nothing is revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: "logout failed: " + err.Error(),
		})
		return
	}

	token := req.Token
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: "logout failed",
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Code:    dto.CodeOK,
		Message: "logout succeeded",
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	_, err := h.authService.Register(c.Request.Context(), domain.Registration{
		Username:    req.Username,
		Password:    req.Password,
		Phone:       req.Phone,
		ClassID:     req.ClassID,
		College:     req.College,
		ScoreNumber: req.ScoreNumber,
	})
	if err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Code:    dto.CodeOK,
		Message: "registration succeeded",
	})
}

// bindOptionalJSON binds the body into obj. An empty body is not an error,
// whatever its Content-Length says.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
