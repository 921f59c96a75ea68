package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/season-link/profiles/pkg/apperror"
)

// Client talks to the Keycloak admin API to provision candidate accounts.
// A fresh service-account token is acquired per operation; tokens are not
// cached.
type Client struct {
	baseURL  string
	realm    string
	username string
	password string
	clientID string
	http     *http.Client
}

type Config struct {
	URL             string
	Realm           string
	ServiceUsername string
	ServicePassword string
	ClientID        string
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		realm:    cfg.Realm,
		username: cfg.ServiceUsername,
		password: cfg.ServicePassword,
		clientID: cfg.ClientID,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// token acquires a service-account token via the password grant.
func (c *Client) token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.username)
	form.Set("password", c.password)
	form.Set("client_id", c.clientID)

	endpoint := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", c.baseURL, c.realm)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperror.Upstream("Identity provider is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperror.Upstream(fmt.Sprintf("Failed to acquire identity provider token: %s", resp.Status), nil)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", apperror.Upstream("Malformed token response from identity provider", err)
	}
	if tr.AccessToken == "" {
		return "", apperror.Upstream("Identity provider returned an empty token", nil)
	}

	return tr.AccessToken, nil
}

// CreateUser creates the user and sets its permanent password. The canonical
// id is taken from the Location header of the create response.
func (c *Client) CreateUser(ctx context.Context, firstName, lastName, password string) (uuid.UUID, error) {
	token, err := c.token(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	createBody := map[string]interface{}{
		"enabled":       true,
		"username":      firstName,
		"firstName":     firstName,
		"lastName":      lastName,
		"emailVerified": true,
	}

	usersURL := fmt.Sprintf("%s/admin/realms/%s/users", c.baseURL, c.realm)
	resp, err := c.doJSON(ctx, http.MethodPost, usersURL, token, createBody)
	if err != nil {
		return uuid.Nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return uuid.Nil, apperror.Upstream(fmt.Sprintf("Failed to create user on identity provider: %s", resp.Status), nil)
	}

	id, err := userIDFromLocation(resp.Header.Get("Location"))
	if err != nil {
		return uuid.Nil, apperror.Upstream("Identity provider returned an unusable Location header", err)
	}

	passwordBody := map[string]interface{}{
		"type":      "password",
		"temporary": false,
		"value":     password,
	}

	resetURL := fmt.Sprintf("%s/%s/reset-password", usersURL, id)
	pwResp, err := c.doJSON(ctx, http.MethodPut, resetURL, token, passwordBody)
	if err != nil {
		return uuid.Nil, err
	}
	defer pwResp.Body.Close()

	if pwResp.StatusCode < 200 || pwResp.StatusCode > 299 {
		return uuid.Nil, apperror.Upstream(fmt.Sprintf("Failed to set the user password: %s", pwResp.Status), nil)
	}

	return id, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint, token string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.Upstream("Identity provider is unreachable", err)
	}
	return resp, nil
}

// userIDFromLocation extracts the user id from a Location header shaped like
// .../admin/realms/{realm}/users/{id}.
func userIDFromLocation(location string) (uuid.UUID, error) {
	if location == "" {
		return uuid.Nil, fmt.Errorf("empty Location header")
	}
	idx := strings.LastIndex(location, "/")
	return uuid.Parse(location[idx+1:])
}
