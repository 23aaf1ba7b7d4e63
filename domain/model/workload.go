package model

import "time"

// PodState is the synthesized status vocabulary for a pod of a continuous service.
type PodState string

const (
	PodPending PodState = "PENDING"
	PodRunning PodState = "RUNNING"
	PodErrored PodState = "ERRORED"
	PodUnknown PodState = "UNKNOWN"
)

// PodStatus is the derived status of one pod.
type PodStatus struct {
	Name    string   `json:"name"`
	Status  PodState `json:"status"`
	Message string   `json:"message,omitempty"`
}

// Deployment is one revision of an app's continuous service, read from the
// cluster and never written.
type Deployment struct {
	ID            string      `json:"id"`
	ProjectID     string      `json:"projectId"`
	AppID         string      `json:"appId"`
	Revision      string      `json:"revision,omitempty"`
	Replicas      int32       `json:"replicas"`
	ReadyReplicas int32       `json:"readyReplicas"`
	PodStatuses   []PodStatus `json:"podStatuses"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// RunState is the synthesized status vocabulary for a one-shot job.
type RunState string

const (
	RunRunning   RunState = "RUNNING"
	RunSucceeded RunState = "SUCCEEDED"
	RunFailed    RunState = "FAILED"
	RunUnknown   RunState = "UNKNOWN"
)

// Run is one execution of an app's batch job.
type Run struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	AppID     string    `json:"appId"`
	Status    RunState  `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Release is one installed revision of an app's chart.
type Release struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	AppID       string    `json:"appId"`
	Revision    int       `json:"revision"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Chart       string    `json:"chart,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
