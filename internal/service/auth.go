package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vipgraph/internal/domain"
	"vipgraph/internal/repository"
)

// DefaultSessionTTL is how long a session lives without being renewed.
const DefaultSessionTTL = 12 * time.Hour

// AuthService authenticates users and manages their sessions. Tokens are
// opaque; everything the request layer needs afterwards is the resolved
// AuthContext.
type AuthService struct {
	repo     repository.Repository
	sessions *sessionStore
}

// NewAuthService creates a new auth service
func NewAuthService(repo repository.Repository, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		repo:     repo,
		sessions: newSessionStore(ttl),
	}
}

// Login verifies the credentials and opens a session. The error for an
// unknown email and a wrong password is identical on purpose.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !user.CheckPassword(password) {
		return "", fmt.Errorf("login failed: %w", domain.ErrAuthorization)
	}

	return s.sessions.create(domain.AuthContext{
		UserID:       user.ID,
		CompanyID:    user.CompanyID,
		IsSuperadmin: user.IsSuperadmin,
	}), nil
}

// Logout closes the session. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.sessions.delete(token)
}

// Resolve maps a session token to its auth context.
func (s *AuthService) Resolve(token string) (domain.AuthContext, bool) {
	return s.sessions.get(token)
}

// sessionStore is an in-memory token table with expiry.
type sessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
}

type session struct {
	auth      domain.AuthContext
	expiresAt time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

func (st *sessionStore) create(auth domain.AuthContext) string {
	token := uuid.NewString()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[token] = session{
		auth:      auth,
		expiresAt: time.Now().Add(st.ttl),
	}
	return token
}

func (st *sessionStore) get(token string) (domain.AuthContext, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[token]
	st.mu.RUnlock()

	if !ok {
		return domain.AuthContext{}, false
	}
	if time.Now().After(sess.expiresAt) {
		st.delete(token)
		return domain.AuthContext{}, false
	}
	return sess.auth, true
}

func (st *sessionStore) delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}
