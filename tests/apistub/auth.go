package apistub

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/attainment/core/session"
)

const signingKey = "apistub-secret"

var jwtConfig = middleware.JWTConfig{
	SigningKey:    []byte(signingKey),
	SigningMethod: middleware.AlgorithmHS256,
	ContextKey:    "userToken",
	Claims:        new(session.Claims),
}

// User is a session.User as returned by the login endpoint.
type User = session.User

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddUser registers an account that can log in with email & password.
func (s *Server) AddUser(usr User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	s.accounts[usr.Email] = account{user: usr, password: hash}
	s.mu.Unlock()
}

// Token mints a signed access token for usr, valid for ttl (negative: already expired).
func Token(usr User, ttl time.Duration) string {
	now := time.Now()
	claims := &session.Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   usr.ID.String(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		Role: usr.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingKey))
	if err != nil {
		panic(err)
	}
	return token
}

// Credential is a logged in session for usr, with a token valid for an hour.
func Credential(usr User) session.Credential {
	return session.Credential{AccessToken: Token(usr, time.Hour), User: usr}
}

func contextClaims(ctx echo.Context) (*session.Claims, bool) {
	if token, ok := ctx.Get(jwtConfig.ContextKey).(*jwt.Token); ok {
		claims, ok := token.Claims.(*session.Claims)
		return claims, ok
	}
	return nil, false
}

// roleMiddleware only lets through tokens carrying one of roles.
func roleMiddleware(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := contextClaims(ctx)
			if !ok {
				return errUnauthorized
			}
			cred := session.Credential{User: session.User{Role: claims.Role}}
			if cred.HasAnyRole(roles...) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

func (s *Server) login(ctx echo.Context) error {
	form := new(loginForm)
	if err := ctx.Bind(form); err != nil {
		return errAuthenticationFailed
	}
	s.mu.Lock()
	acc, ok := s.accounts[form.Email]
	s.mu.Unlock()
	if !ok {
		return errAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword(acc.password, []byte(form.Password)); err != nil {
		return errAuthenticationFailed
	}
	return ctx.JSON(http.StatusOK, session.Credential{AccessToken: Token(acc.user, time.Hour), User: acc.user})
}
