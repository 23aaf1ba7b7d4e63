package model

import "time"

// App is a chart-valued application inside a project. Values holds the attribute
// values declared by the app chart identified by AppChartID.
type App struct {
	ID         string         `json:"id"`
	ProjectID  string         `json:"projectId"`
	Name       string         `json:"name"`
	AppChartID string         `json:"appChartId"`
	Values     map[string]any `json:"values,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// FileMount is one element of a file-mount typed value.
type FileMount struct {
	FileID    string `json:"fileId"`
	MountPath string `json:"mountPath"`
}
