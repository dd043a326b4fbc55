package authprovider

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"golang.org/x/crypto/argon2"
)

var (
	ErrEmailTaken         = goerr.New("email already registered")
	ErrInvalidCredentials = goerr.New("invalid email or password")
)

const (
	tokenIssuer   = "riskboard"
	tokenLifetime = time.Hour

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

type localUser struct {
	id   string
	salt []byte
	hash []byte
}

// Local is an in-process identity provider for development and tests.
// Accounts live in memory; sessions are HS256 JWTs signed with the
// configured secret.
type Local struct {
	mu     sync.RWMutex
	users  map[string]*localUser
	secret []byte
	now    func() time.Time
}

var _ interfaces.AuthProvider = &Local{}

func NewLocal(secret []byte) (*Local, error) {
	if len(secret) == 0 {
		return nil, goerr.New("signing secret is required")
	}
	return &Local{
		users:  make(map[string]*localUser),
		secret: secret,
		now:    time.Now,
	}, nil
}

func hashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (l *Local) SignUp(ctx context.Context, email, password string) (*model.Identity, error) {
	key := normalizeEmail(email)
	if key == "" || password == "" {
		return nil, goerr.New("email and password are required")
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, goerr.Wrap(err, "failed to generate salt")
	}
	user := &localUser{
		id:   uuid.NewString(),
		salt: salt,
		hash: hashPassword(password, salt),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[key]; ok {
		return nil, goerr.Wrap(ErrEmailTaken, "failed to sign up", goerr.V("email", email))
	}
	l.users[key] = user

	return &model.Identity{ID: user.id, Email: email}, nil
}

func (l *Local) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	key := normalizeEmail(email)

	l.mu.RLock()
	user, ok := l.users[key]
	l.mu.RUnlock()

	if !ok {
		return nil, goerr.Wrap(ErrInvalidCredentials, "failed to sign in", goerr.V("email", email))
	}
	if subtle.ConstantTimeCompare(hashPassword(password, user.salt), user.hash) != 1 {
		return nil, goerr.Wrap(ErrInvalidCredentials, "failed to sign in", goerr.V("email", email))
	}

	token, err := l.issueToken(user.id, email)
	if err != nil {
		return nil, err
	}

	return &model.Session{
		AccessToken: token,
		Identity:    &model.Identity{ID: user.id, Email: email},
	}, nil
}

func (l *Local) issueToken(sub, email string) (string, error) {
	now := l.now()
	token, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(sub).
		IssuedAt(now).
		Expiration(now.Add(tokenLifetime)).
		Claim("email", email).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, l.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token")
	}
	return string(signed), nil
}

// VerifyToken parses a token issued by SignIn and returns its subject
func (l *Local) VerifyToken(token string) (string, error) {
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, l.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithClock(jwt.ClockFunc(l.now)),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to verify token")
	}
	return parsed.Subject(), nil
}
