package models

import "time"

// Uploader identifies the user that uploaded a document. It is denormalized
// onto the document record the same way the dashboard displays it.
type Uploader struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"` // bytes
	UploadedBy Uploader  `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// EntityID implements repositories.Entity.
func (d Document) EntityID() string { return d.ID }
