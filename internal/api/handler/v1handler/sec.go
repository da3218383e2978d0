package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"studyshare/internal/config"
	"studyshare/internal/users"
	"studyshare/pkg/domain"
	"studyshare/pkg/logger"
	"studyshare/pkg/serrors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// UserIDKey holds the authenticated domain.UserID.
	UserIDKey CtxKey = "UserID"
	// UserKey holds the synced *domain.User.
	UserKey CtxKey = "User"
)

// sessionCookie is the cookie Clerk keeps the session token in.
const sessionCookie = "__session"

// SessionClaims are the claims of a Clerk session token. Profile fields
// come from a custom session token template and may be missing.
type SessionClaims struct {
	jwt.RegisteredClaims

	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Role     string `json:"role,omitempty"`
	// Metadata carries the user's public metadata when the template adds it.
	Metadata struct {
		Role string `json:"role,omitempty"`
	} `json:"metadata,omitzero"`
}

// SecHandlerOptions configure session token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key the tokens are signed with.
	PublicKey string
	// Issuer is matched against the iss claim when set.
	Issuer string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.Auth.PublicKeyPEM,
		Issuer:    cfg.Auth.Issuer,
	}
}

// SecHandler authenticates requests with Clerk session tokens and syncs the
// caller's user row.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
	users  users.Users
}

// NewSecHandler parses the verification key. users may be nil, in which
// case HandleBearerAuth only verifies the token.
func NewSecHandler(opts *SecHandlerOptions, users users.Users) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	return &SecHandler{
		key:    key,
		parser: jwt.NewParser(parserOpts...),
		users:  users,
	}, nil
}

// HandleBearerAuth verifies token and returns a context carrying the
// caller's id and, when a user service is set, the synced user.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims SessionClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "session token has no subject")
	}

	userID := domain.UserID(claims.Subject)
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = logger.WithFields(ctx, zap.String("userID", claims.Subject))
	if s.users == nil {
		return ctx, nil
	}

	role := claims.Role
	if role == "" {
		role = claims.Metadata.Role
	}
	user, err := s.users.Sync(ctx, users.Claims{
		Subject:  userID,
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: claims.ImageURL,
		Role:     domain.Role(role),
	})
	if err != nil {
		return ctx, fmt.Errorf("could not sync user: %w", err)
	}

	return context.WithValue(ctx, UserKey, user), nil
}

// bearerToken extracts the session token from the Authorization header or
// the Clerk session cookie.
func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, ok := strings.Cut(auth, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}

	return ""
}

// Require rejects requests without a valid session token.
func (s *SecHandler) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.reject(w, r, serrors.With(serrors.ErrUnauthorized, "missing session token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			s.reject(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional authenticates the caller when a token is present. An invalid
// token is still rejected so clients notice expired sessions.
func (s *SecHandler) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			s.reject(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin only lets admins through. It is used for non-API handlers
// such as the job dashboard.
func (s *SecHandler) RequireAdmin(next http.Handler) http.Handler {
	return s.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetUserFromContext(r.Context()).IsAdmin() {
			s.reject(w, r, serrors.With(serrors.ErrForbidden, "admin only"))

			return
		}

		next.ServeHTTP(w, r)
	}))
}

func (s *SecHandler) reject(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err)
}

// GetUserIDFromContext returns the authenticated caller's id, or an empty
// id for anonymous requests.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

// GetUserFromContext returns the authenticated caller, or nil.
func GetUserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(UserKey).(*domain.User)

	return user
}

// currentUser returns the caller or an UNAUTHORIZED error.
func currentUser(ctx context.Context) (*domain.User, error) {
	user := GetUserFromContext(ctx)
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "sign in required")
	}

	return user, nil
}
