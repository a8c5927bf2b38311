package domain

import "time"

// Api is a managed API as stored by an ApiRepository.
// Every field may be unset; timestamps use nil for "not set".
type Api struct {
	ID             string         `json:"id,omitempty"`
	Name           string         `json:"name,omitempty"`
	Description    string         `json:"description,omitempty"`
	Views          []string       `json:"views,omitempty"`
	Definition     string         `json:"definition,omitempty"`
	DeployedAt     *time.Time     `json:"deployed_at,omitempty"`
	Groups         []string       `json:"groups,omitempty"`
	LifecycleState LifecycleState `json:"lifecycle_state,omitempty"`
	Picture        string         `json:"picture,omitempty"`
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
	Version        string         `json:"version,omitempty"`
	Visibility     Visibility     `json:"visibility,omitempty"`
	Labels         []string       `json:"labels,omitempty"`
}
