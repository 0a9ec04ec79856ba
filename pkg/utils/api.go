package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// TokenFunc returns the bearer credential for the current session, or ""
// when nobody is signed in.
type TokenFunc func() string

type API struct {
	client  *http.Client
	baseURL string
	token   TokenFunc
}

func NewAPI(baseURL string, token TokenFunc) *API {
	return &API{client: http.DefaultClient, baseURL: baseURL, token: token}
}

func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return err
	}
	return a.do(req, v)
}

func (a *API) Post(ctx context.Context, path string, body any, v any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s%s", a.baseURL, path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return a.do(req, v)
}

func (a *API) do(req *http.Request, v any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if a.token != nil {
		if tok := a.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// apiError surfaces the server's message field when the error payload has
// one, else a generic message with the status.
func apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s", payload.Message)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
