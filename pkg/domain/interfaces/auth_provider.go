package interfaces

import (
	"context"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

// AuthProvider is the external identity service. Password storage, session
// issuance and email confirmation happen on its side.
type AuthProvider interface {
	// SignUp creates an identity. A nil identity with a nil error means the
	// provider accepted the request but returned no user.
	SignUp(ctx context.Context, email, password string) (*model.Identity, error)

	// SignIn authenticates and returns a session for the identity
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
}
