package model

import "time"

// DeployHook lets an external system trigger a deploy of AppID by presenting Token.
type DeployHook struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	AppID     string    `json:"appId"`
	Name      string    `json:"name"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
