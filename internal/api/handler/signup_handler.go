package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/api/util"
	"github.com/tohsaka888/societies-server/internal/core/repository"
	"github.com/tohsaka888/societies-server/internal/core/service"
)

// Allowed fields for sign-up queries and ordering
var (
	signUpQueryFields = []string{"username", "competition_id", "competition", "college", "class_id", "created_at"}
	signUpOrderFields = []string{"username", "competition_id", "college", "created_at"}
)

type SignUpHandler struct {
	signUpService *service.SignUpService
}

func NewSignUpHandler(signUpService *service.SignUpService) *SignUpHandler {
	return &SignUpHandler{
		signUpService: signUpService,
	}
}

// SignUpCompetition handles POST /signUpCompetition
func (h *SignUpHandler) SignUpCompetition(c *gin.Context) {
	var req dto.SignUpCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	if _, err := h.signUpService.RecordSignUp(c.Request.Context(), req.UserID, req.Competition, req.ID); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Code:    dto.CodeOK,
		Message: "sign-up succeeded",
	})
}

// IsSignUp handles POST /isSignUp
func (h *SignUpHandler) IsSignUp(c *gin.Context) {
	var req dto.IsSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	status, err := h.signUpService.CheckSignUp(c.Request.Context(), req.Username, req.ID)
	if err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	var message any = []dto.NotSignedUp{{IsSignUp: false}}
	if status.SignedUp {
		message = status.Records
	}

	c.JSON(http.StatusOK, dto.IsSignUpResponse{
		Code:    dto.CodeOK,
		Message: message,
	})
}

// CompetitionUserList handles POST /competitionUserList
func (h *SignUpHandler) CompetitionUserList(c *gin.Context) {
	lf, err := util.ParseListFilter(util.ListParams{
		Query:   c.Query("query"),
		Order:   c.Query("order"),
		Page:    c.Query("page"),
		PerPage: c.Query("per_page"),
	}, signUpQueryFields, signUpOrderFields)
	if err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	items, total, err := h.signUpService.ListSignUps(c.Request.Context(), repository.SignUpFilter{ListFilter: lf})
	if err != nil {
		c.JSON(dto.StatusFailure, dto.ErrorResponse{
			Code:   dto.CodeFail,
			ErrMsg: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SignUpListResponse{
		Code:                dto.CodeOK,
		CompetitionUserList: items,
		Pagination:          dto.NewPaginationInfo(total, lf.Page, lf.PerPage),
	})
}
