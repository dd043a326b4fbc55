package authprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/service/authprovider"
)

func newLocal(t *testing.T) *authprovider.Local {
	t.Helper()
	p, err := authprovider.NewLocal([]byte("test-secret"))
	gt.NoError(t, err).Required()
	return p
}

func TestLocalSignUpAndSignIn(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	identity, err := p.SignUp(ctx, "pm@example.com", "correct horse")
	gt.NoError(t, err).Required()
	gt.Bool(t, identity.ID != "").True()
	gt.Value(t, identity.Email).Equal("pm@example.com")

	session, err := p.SignIn(ctx, "PM@example.com ", "correct horse")
	gt.NoError(t, err).Required()
	gt.V(t, session.Identity).NotNil().Required()
	gt.Value(t, session.Identity.ID).Equal(identity.ID)

	sub, err := p.VerifyToken(session.AccessToken)
	gt.NoError(t, err)
	gt.Value(t, sub).Equal(identity.ID)
}

func TestLocalRejectsDuplicateEmail(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "pm@example.com", "pw")
	gt.NoError(t, err).Required()

	_, err = p.SignUp(ctx, "pm@example.com", "other")
	gt.Bool(t, errors.Is(err, authprovider.ErrEmailTaken)).True()
}

func TestLocalRejectsBadCredentials(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "pm@example.com", "pw")
	gt.NoError(t, err).Required()

	_, err = p.SignIn(ctx, "pm@example.com", "wrong")
	gt.Bool(t, errors.Is(err, authprovider.ErrInvalidCredentials)).True()

	_, err = p.SignIn(ctx, "nobody@example.com", "pw")
	gt.Bool(t, errors.Is(err, authprovider.ErrInvalidCredentials)).True()
}

func TestLocalTokenExpires(t *testing.T) {
	p := newLocal(t)
	ctx := context.Background()
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.SetNow(func() time.Time { return issued })

	_, err := p.SignUp(ctx, "pm@example.com", "pw")
	gt.NoError(t, err).Required()
	session, err := p.SignIn(ctx, "pm@example.com", "pw")
	gt.NoError(t, err).Required()

	p.SetNow(func() time.Time { return issued.Add(2 * time.Hour) })
	_, err = p.VerifyToken(session.AccessToken)
	gt.Error(t, err)
}

func TestLocalTokenSignedWithOtherSecret(t *testing.T) {
	a := newLocal(t)
	b, err := authprovider.NewLocal([]byte("another-secret"))
	gt.NoError(t, err).Required()
	ctx := context.Background()

	_, err = a.SignUp(ctx, "pm@example.com", "pw")
	gt.NoError(t, err).Required()
	session, err := a.SignIn(ctx, "pm@example.com", "pw")
	gt.NoError(t, err).Required()

	_, err = b.VerifyToken(session.AccessToken)
	gt.Error(t, err)
}
