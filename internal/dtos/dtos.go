package dtos

import "github.com/jobtrail/jobtrail/internal/models"

type TrackJobRequest struct {
	URL string `json:"url" binding:"required"`
}

type TrackJobResponse struct {
	Application *models.Application `json:"application"`
	ReviewID    string              `json:"review_id,omitempty"`
}

type ReviewStatusResponse struct {
	ReviewID string `json:"review_id"`
	State    string `json:"state"`
	Result   string `json:"result,omitempty"`
	Attempts int    `json:"attempts,omitempty"`
}

type KeywordRequest struct {
	Description string `json:"description" binding:"required"`
}

type KeywordResponse struct {
	Keywords []string `json:"keywords"`
}

type GuidanceRequest struct {
	Resume      string `json:"resume" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type GuidanceResponse struct {
	Guidance string `json:"guidance"`
}

type QuantifyRequest struct {
	Bullet string `json:"bullet" binding:"required"`
}

type QuantifyResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ExpandRoleRequest struct {
	Title string `json:"title" binding:"required"`
	Notes string `json:"notes"`
}

type ExpandRoleResponse struct {
	Expanded string `json:"expanded"`
}
