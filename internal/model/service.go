package model

import "time"

// Service represents a marketing service offering.
// ID is the application-assigned key; RecordID is the storage key.
type Service struct {
	RecordID         int       `json:"-"`
	ID               string    `json:"id"`
	Icon             string    `json:"icon"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	FullDescription  string    `json:"fullDescription"`
	LongDescription  string    `json:"longDescription"`
	Color            string    `json:"color"`
	Gradient         string    `json:"gradient"`
	Features         []string  `json:"features"`
	Benefits         []string  `json:"benefits"`
	UseCases         []string  `json:"useCases"`
	Technologies     []string  `json:"technologies"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateServiceRequest is used for creating a new service.
type CreateServiceRequest struct {
	ID               string   `json:"id" binding:"required"`
	Icon             string   `json:"icon" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	ShortDescription string   `json:"shortDescription" binding:"required"`
	FullDescription  string   `json:"fullDescription" binding:"required"`
	LongDescription  string   `json:"longDescription" binding:"required"`
	Color            string   `json:"color" binding:"required"`
	Gradient         string   `json:"gradient" binding:"required"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	UseCases         []string `json:"useCases"`
	Technologies     []string `json:"technologies"`
}

// UpdateServiceRequest carries a partial update; only non-nil fields are
// applied to the stored record.
type UpdateServiceRequest struct {
	Icon             *string   `json:"icon,omitempty"`
	Title            *string   `json:"title,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	FullDescription  *string   `json:"fullDescription,omitempty"`
	LongDescription  *string   `json:"longDescription,omitempty"`
	Color            *string   `json:"color,omitempty"`
	Gradient         *string   `json:"gradient,omitempty"`
	Features         *[]string `json:"features,omitempty"`
	Benefits         *[]string `json:"benefits,omitempty"`
	UseCases         *[]string `json:"useCases,omitempty"`
	Technologies     *[]string `json:"technologies,omitempty"`
}
