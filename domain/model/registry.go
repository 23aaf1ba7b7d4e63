package model

import "time"

// RegistryAuthMethod selects how images are pulled from a registry.
type RegistryAuthMethod string

const (
	RegistryAuthNone  RegistryAuthMethod = "none"
	RegistryAuthToken RegistryAuthMethod = "token"
)

// Registry is a container registry apps can pull images from.
type Registry struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	URL        string             `json:"url"`
	AuthMethod RegistryAuthMethod `json:"authMethod"`
	AuthToken  string             `json:"authToken,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}
