package model

import "time"

// Domain routes HTTP traffic for Hostname+Path to an app port. AppID is empty
// while the domain is not attached.
type Domain struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	Hostname      string    `json:"hostname"`
	Path          string    `json:"path"`
	AppID         string    `json:"appId,omitempty"`
	AppPort       int32     `json:"appPort,omitempty"`
	TLSSecretName string    `json:"tlsSecretName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MasterDomain is a cluster-wide (usually wildcard) domain under which app
// domains may be allocated, with an optional TLS certificate.
type MasterDomain struct {
	ID        string    `json:"id"`
	Hostname  string    `json:"hostname"`
	TLSCert   string    `json:"tlsCert,omitempty"`
	TLSKey    string    `json:"tlsKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
