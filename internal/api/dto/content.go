package dto

// IDRequest carries a competition id
type IDRequest struct {
	ID string `json:"id" binding:"required"`
}

// InsertResponse represents a stored article
type InsertResponse struct {
	ID      string `json:"_id"`
	Message string `json:"message"`
}

// InsertFailureResponse is sent when an article could not be stored
type InsertFailureResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CompetitionListResponse represents the recent competitions
type CompetitionListResponse struct {
	Code            int              `json:"code"`
	CompetitionList []map[string]any `json:"competitionList"`
}

// PageListResponse represents the page documents of a competition
type PageListResponse struct {
	Code     int              `json:"code"`
	Message  string           `json:"message"`
	PageList []map[string]any `json:"pageList"`
}

// AwardListResponse represents the award list of a competition
type AwardListResponse struct {
	Code      int            `json:"code"`
	AwardList map[string]any `json:"awardList"`
}

// ImagesResponse represents the images of a competition
type ImagesResponse struct {
	Code   int `json:"code"`
	Images any `json:"images"`
}
