package api

import (
	"context"
	"net/http"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

func (c *client) Login(ctx context.Context, input *entities.LoginRequest) (*entities.AuthToken, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out entities.AuthToken
	ok, err := c.call(ctx, &request{method: http.MethodPost, path: "/auth/login", body: input}, &out)
	if err != nil {
		return nil, err
	}
	if !ok || out.AccessToken == "" {
		return nil, errors.Internal("login response carried no access token")
	}
	return &out, nil
}

func (c *client) Signup(ctx context.Context, input *entities.SignupRequest) error {
	if input == nil {
		return errors.InvalidArgument("input cannot be nil")
	}

	_, err := c.call(ctx, &request{method: http.MethodPost, path: "/auth/signup", body: input}, nil)
	return err
}

func (c *client) GetMe(ctx context.Context) (*entities.User, error) {
	var out entities.User
	ok, err := c.call(ctx, &request{method: http.MethodGet, path: "/users/me"}, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFound("profile not found")
	}
	return &out, nil
}
