package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const testPolicy = `package eventspot.authz

default allow := false

token := payload {
    [_, payload, _] := io.jwt.decode(input.token)
}

allow = response {
    input.method == "GET"
    token.accounts[_] == input.account
    response := {"account": input.account}
}
`

func TestAccessGrantedForTokenWithAccount(t *testing.T) {
	is, a := setupTest(t)

	r := newRequest(http.MethodGet, "/api/v1/accounts/default/events", `{"accounts":["default"]}`)

	is.NoErr(a.CheckAccess(context.Background(), r, "default"))
}

func TestAccessDeniedForOtherAccount(t *testing.T) {
	is, a := setupTest(t)

	r := newRequest(http.MethodGet, "/api/v1/accounts/culture/events", `{"accounts":["default"]}`)

	err := a.CheckAccess(context.Background(), r, "culture")
	is.True(errors.Is(err, ErrAccessDenied))
}

func TestAccessDeniedWithoutToken(t *testing.T) {
	is, a := setupTest(t)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/default/events", nil)

	err := a.CheckAccess(context.Background(), r, "default")
	is.True(errors.Is(err, ErrAccessDenied))
}

func TestAccessDeniedForUnhandledMethod(t *testing.T) {
	is, a := setupTest(t)

	r := newRequest(http.MethodDelete, "/api/v1/accounts/default/events/1", `{"accounts":["default"]}`)

	err := a.CheckAccess(context.Background(), r, "default")
	is.True(errors.Is(err, ErrAccessDenied))
}

func TestBrokenPolicyFailsToLoad(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthenticator(context.Background(), strings.NewReader("package broken\n\nallow {"))
	is.True(err != nil)
}

func newRequest(method, path, claims string) *http.Request {
	enc := base64.RawURLEncoding
	token := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." +
		enc.EncodeToString([]byte(claims)) + "." +
		enc.EncodeToString([]byte("signature"))

	r := httptest.NewRequest(method, path, nil)
	r.Header.Add("Authorization", "Bearer "+token)
	return r
}

func setupTest(t *testing.T) (*is.I, Enticator) {
	is := is.New(t)

	a, err := NewAuthenticator(context.Background(), strings.NewReader(testPolicy))
	is.NoErr(err)

	return is, a
}
