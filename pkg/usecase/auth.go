package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

const signupMessage = "Signup successful. Please check your email to confirm your account."

type AuthUseCase struct {
	repo     interfaces.Repository
	provider interfaces.AuthProvider
}

func NewAuthUseCase(repo interfaces.Repository, provider interfaces.AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		repo:     repo,
		provider: provider,
	}
}

// Signup creates an identity at the Auth Provider and attaches a role
// profile to it. A failed profile insert does not roll the identity back.
func (uc *AuthUseCase) Signup(ctx context.Context, req *model.SignupRequest) (*model.SignupResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity, err := uc.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, goerr.Wrap(ErrSignupFailed, err.Error(), goerr.V(EmailKey, req.Email))
	}
	if identity == nil {
		return nil, goerr.Wrap(ErrSignupFailed, "auth provider returned no user", goerr.V(EmailKey, req.Email))
	}

	profile, err := uc.repo.Profile().Create(ctx, &model.Profile{ID: identity.ID, Role: req.Role})
	if err != nil {
		return nil, goerr.Wrap(ErrSignupFailed, err.Error(),
			goerr.V(EmailKey, req.Email), goerr.V("identity_id", identity.ID))
	}
	if profile == nil {
		return nil, goerr.Wrap(ErrSignupFailed, "profile was not created",
			goerr.V(EmailKey, req.Email), goerr.V("identity_id", identity.ID))
	}

	logging.From(ctx).Info("user signed up", "identity_id", identity.ID, "role", req.Role)

	return &model.SignupResult{
		Message: signupMessage,
		Email:   req.Email,
	}, nil
}

// Login signs in at the Auth Provider and returns the session token with
// the user's role.
func (uc *AuthUseCase) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := uc.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, err.Error(), goerr.V(EmailKey, req.Email))
	}
	if session == nil || session.AccessToken == "" || session.Identity == nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "auth provider returned no session", goerr.V(EmailKey, req.Email))
	}

	profile, err := uc.repo.Profile().Get(ctx, session.Identity.ID)
	if err != nil {
		return nil, goerr.Wrap(upstream(err), "failed to get profile", goerr.V("identity_id", session.Identity.ID))
	}
	if profile == nil {
		return nil, goerr.Wrap(ErrProfileNotFound, "no profile for identity", goerr.V("identity_id", session.Identity.ID))
	}

	email := session.Identity.Email
	if email == "" {
		email = req.Email
	}

	return &model.LoginResult{
		Token: session.AccessToken,
		User: model.AuthUser{
			ID:    session.Identity.ID,
			Email: email,
			Role:  profile.Role,
		},
	}, nil
}
