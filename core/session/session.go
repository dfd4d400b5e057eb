package session

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/trezcool/attainment/core"
)

// Roles
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleFaculty     = "faculty"
)

var (
	// roles allowed on each group of screens
	AdminRoles       = []string{RoleAdmin}
	CoordinatorRoles = []string{RoleCoordinator, RoleAdmin}
	FacultyRoles     = []string{RoleFaculty, RoleCoordinator, RoleAdmin}

	errNoToken = errors.New("session: no access token")
)

type (
	// Store is where the logged in user & its access token are persisted between actions.
	Store interface {
		// Credential returns the stored credential; false when there is none or it cannot be read.
		Credential(ctx context.Context) (Credential, bool)
		Save(ctx context.Context, cred Credential) error
		Clear(ctx context.Context) error
	}

	User struct {
		ID     core.ID `json:"id"`
		Name   string  `json:"name,omitempty"`
		Email  string  `json:"email,omitempty"`
		Role   string  `json:"role,omitempty"`
		DeptID core.ID `json:"dept_id,omitempty"`
	}

	Credential struct {
		AccessToken string `json:"accessToken"`
		User        User   `json:"user"`
	}

	// Claims are the parts of the access token we read. The token is never verified here.
	Claims struct {
		jwt.StandardClaims
		Role  string   `json:"role,omitempty"`
		Roles []string `json:"roles,omitempty"`
	}
)

// Claims decodes the access token's payload without verifying its signature.
func (c Credential) Claims() (*Claims, error) {
	if c.AccessToken == "" {
		return nil, errNoToken
	}
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(c.AccessToken, claims); err != nil {
		return nil, errors.Wrap(err, "parsing access token")
	}
	return claims, nil
}

// Usable reports whether the credential may be sent: it has a token that is not a JWT past
// its expiry. Opaque (non JWT) tokens are left to the server to judge.
func (c Credential) Usable(now time.Time) bool {
	if c.AccessToken == "" {
		return false
	}
	claims, err := c.Claims()
	if err != nil || claims.ExpiresAt == 0 {
		return true
	}
	return now.Unix() < claims.ExpiresAt
}

// Roles merges the stored user's role with the roles carried by the token.
func (c Credential) Roles() []string {
	roles := []string{strings.ToLower(c.User.Role)}
	if claims, err := c.Claims(); err == nil {
		roles = append(roles, strings.ToLower(claims.Role))
		for _, role := range claims.Roles {
			roles = append(roles, strings.ToLower(role))
		}
	}
	return core.UniqueStrings(roles)
}

// HasAnyRole reports whether the user holds one of roles. No roles means anyone logged in.
func (c Credential) HasAnyRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, have := range c.Roles() {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Authorized returns the store's credential when it is usable.
func Authorized(ctx context.Context, store Store) (Credential, bool) {
	if store == nil {
		return Credential{}, false
	}
	cred, ok := store.Credential(ctx)
	if !ok || !cred.Usable(time.Now()) {
		return Credential{}, false
	}
	return cred, true
}

func decode(data []byte) (Credential, bool) {
	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return Credential{}, false
	}
	if cred.AccessToken == "" {
		return Credential{}, false
	}
	return cred, true
}

func encode(cred Credential) ([]byte, error) {
	if cred.AccessToken == "" {
		return nil, errNoToken
	}
	data, err := json.Marshal(cred)
	return data, errors.Wrap(err, "encoding credential")
}
