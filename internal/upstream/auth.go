package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/lernia/console-backend/internal/model"
)

// Login exchanges admin credentials for a platform token and profile.
// Invalid credentials surface as a Rejection carrying the server message;
// the 401 here is a credential refusal, not an expired session.
func (c *Client) Login(ctx context.Context, email, password string) (string, model.AdminProfile, error) {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		envelope
		Token string             `json:"token"`
		Admin model.AdminProfile `json:"admin"`
	}
	err := c.sendJSON(ctx, http.MethodPost, c.adminBase, "/login", body, &out)
	if err != nil {
		// The generic 401 mapping does not apply to the login endpoint.
		if errors.Is(err, ErrSessionExpired) {
			err = &Rejection{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
		}
		return "", model.AdminProfile{}, err
	}
	if out.Token == "" {
		return "", model.AdminProfile{}, &Rejection{StatusCode: http.StatusOK, Message: "login response carried no token"}
	}
	return out.Token, out.Admin, nil
}
