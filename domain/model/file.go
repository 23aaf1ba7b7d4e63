package model

import "time"

// File is mountable content owned by a project.
type File struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Name      string    `json:"name"`
	Content   []byte    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
