package dto

import "net/http"

// Body codes. Clients read the body code, not the HTTP status, to learn
// whether a request succeeded.
const (
	CodeOK   = 200
	CodeFail = 300
)

// StatusFailure is the HTTP status sent when a request could not be
// processed at all (store or parse failures).
const StatusFailure = http.StatusMultipleChoices

// ErrorResponse is the generic failure body
type ErrorResponse struct {
	Code   int    `json:"code"`
	ErrMsg string `json:"errmsg"`
}

// MessageResponse is the generic success body
type MessageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PaginationInfo describes the page returned by a list endpoint
type PaginationInfo struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationInfo computes page counts; perPage 0 means a single page.
func NewPaginationInfo(total, page, perPage int) PaginationInfo {
	totalPages := 1
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return PaginationInfo{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
