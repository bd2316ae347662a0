package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/core/service"
)

type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// AddArticle handles POST /addArticle
func (h *ContentHandler) AddArticle(c *gin.Context) {
	var article map[string]any
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(dto.StatusFailure, dto.InsertFailureResponse{
			Error:   err.Error(),
			Message: "insert failed",
		})
		return
	}

	id, err := h.contentService.AddArticle(c.Request.Context(), article)
	if err != nil {
		c.JSON(dto.StatusFailure, dto.InsertFailureResponse{
			Error:   err.Error(),
			Message: "insert failed",
		})
		return
	}

	c.JSON(http.StatusOK, dto.InsertResponse{
		ID:      id,
		Message: "insert succeeded",
	})
}

// GetArticles handles GET /getArticles
func (h *ContentHandler) GetArticles(c *gin.Context) {
	articles, err := h.contentService.Articles(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// CompetitionList handles POST /competitionList
func (h *ContentHandler) CompetitionList(c *gin.Context) {
	list, err := h.contentService.RecentCompetitions(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompetitionListResponse{
		Code:            dto.CodeOK,
		CompetitionList: list,
	})
}

// Pages handles POST /pages
func (h *ContentHandler) Pages(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, err)
		return
	}

	pages, err := h.contentService.Pages(c.Request.Context(), req.ID)
	if err != nil {
		failure(c, err)
		return
	}

	msg := "ok"
	if len(pages) == 0 {
		msg = "empty"
	}
	c.JSON(http.StatusOK, dto.PageListResponse{
		Code:     dto.CodeOK,
		Message:  msg,
		PageList: pages,
	})
}

// AwardList handles POST /awardList
func (h *ContentHandler) AwardList(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, err)
		return
	}

	award, err := h.contentService.AwardList(c.Request.Context(), req.ID)
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AwardListResponse{
		Code:      dto.CodeOK,
		AwardList: award,
	})
}

// CompetitionImages handles POST /competitionImages
func (h *ContentHandler) CompetitionImages(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, err)
		return
	}

	images, err := h.contentService.CompetitionImages(c.Request.Context(), req.ID)
	if err != nil {
		failure(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ImagesResponse{
		Code:   dto.CodeOK,
		Images: images,
	})
}

func failure(c *gin.Context, err error) {
	c.JSON(dto.StatusFailure, dto.ErrorResponse{
		Code:   dto.CodeFail,
		ErrMsg: err.Error(),
	})
}
