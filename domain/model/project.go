package model

import "time"

// Project groups apps, domains, files and deploy hooks. A project maps 1:1 to a
// cluster namespace named after its ID.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
