package apisvc

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/trezcool/attainment/core/session"
)

var errNoAccessToken = errors.New("login: response carries no access token")

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for the access token & user the session stores.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credential, error) {
	var cred session.Credential
	req := request{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginBody{Email: email, Password: password},
	}
	if err := c.do(ctx, req, &cred); err != nil {
		return session.Credential{}, err
	}
	if cred.AccessToken == "" {
		return session.Credential{}, errNoAccessToken
	}
	return cred, nil
}
