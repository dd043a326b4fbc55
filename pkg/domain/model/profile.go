package model

import "github.com/secmon-lab/riskboard/pkg/domain/types"

// Profile attaches a role to an Auth Provider identity. ID equals the
// identity ID.
type Profile struct {
	ID   string     `json:"id"`
	Role types.Role `json:"role"`
}
