package model

import "time"

// Portfolio represents a portfolio project entry.
// ID is the application-assigned key; RecordID is the storage key.
type Portfolio struct {
	RecordID        int       `json:"-"`
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Tagline         string    `json:"tagline"`
	Category        string    `json:"category"`
	Image           string    `json:"image"`
	Color           string    `json:"color"`
	Icon            *string   `json:"icon,omitempty"`
	LiveLink        *string   `json:"liveLink,omitempty"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription"`
	Technologies    []string  `json:"technologies"`
	Features        []string  `json:"features"`
	Results         []string  `json:"results"`
	Client          string    `json:"client"`
	Duration        string    `json:"duration"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreatePortfolioRequest is used for creating a new portfolio item.
type CreatePortfolioRequest struct {
	ID              string   `json:"id" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Tagline         string   `json:"tagline" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Image           string   `json:"image" binding:"required"`
	Color           string   `json:"color" binding:"required"`
	Icon            *string  `json:"icon"`
	LiveLink        *string  `json:"liveLink"`
	Description     string   `json:"description" binding:"required"`
	FullDescription string   `json:"fullDescription" binding:"required"`
	Technologies    []string `json:"technologies"`
	Features        []string `json:"features"`
	Results         []string `json:"results"`
	Client          string   `json:"client" binding:"required"`
	Duration        string   `json:"duration" binding:"required"`
	Status          string   `json:"status" binding:"required"`
}

// UpdatePortfolioRequest carries a partial update; only non-nil fields are
// applied to the stored record.
type UpdatePortfolioRequest struct {
	Title           *string   `json:"title,omitempty"`
	Tagline         *string   `json:"tagline,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Image           *string   `json:"image,omitempty"`
	Color           *string   `json:"color,omitempty"`
	Icon            *string   `json:"icon,omitempty"`
	LiveLink        *string   `json:"liveLink,omitempty"`
	Description     *string   `json:"description,omitempty"`
	FullDescription *string   `json:"fullDescription,omitempty"`
	Technologies    *[]string `json:"technologies,omitempty"`
	Features        *[]string `json:"features,omitempty"`
	Results         *[]string `json:"results,omitempty"`
	Client          *string   `json:"client,omitempty"`
	Duration        *string   `json:"duration,omitempty"`
	Status          *string   `json:"status,omitempty"`
}
