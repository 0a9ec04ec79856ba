package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, func() string { return "tok-42" })

	var out struct {
		OK bool `json:"ok"`
	}
	err := api.Get(context.Background(), "/ping", nil, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "Bearer tok-42", gotAuth)
}

func TestGetSkipsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, func() string { return "" })

	err := api.Get(context.Background(), "/ping", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGetEncodesParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, nil)

	params := url.Values{}
	params.Set("categoria", "ACAO")
	err := api.Get(context.Background(), "/produtos", params, nil)
	require.NoError(t, err)
	assert.Equal(t, "categoria=ACAO", gotQuery)
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, decodeBody(r, &body))
		assert.Equal(t, "a@b.com", body["email"])
		w.Write([]byte(`{"token":"t"}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, nil)

	var out struct {
		Token string `json:"token"`
	}
	err := api.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.com"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "t", out.Token)
}

func TestErrorUsesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Email ou senha incorretos"}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, nil)

	err := api.Post(context.Background(), "/auth/login", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, "Email ou senha incorretos", err.Error())
}

func TestErrorFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL, nil)

	err := api.Get(context.Background(), "/produtos", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
