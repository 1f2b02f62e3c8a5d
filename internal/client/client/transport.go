package client

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/billbreak/internal/common"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

// authTransport stamps every outgoing request with the stored bearer token
// and a request id. The token is read per request so a login or logout
// takes effect on the very next call.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
	log    logging.Logger
}

func newAuthTransport(base http.RoundTripper, tokens TokenSource, log logging.Logger) *authTransport {
	return &authTransport{base: base, tokens: tokens, log: log}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	r := req.Clone(ctx)

	if t.tokens != nil {
		token, err := t.tokens.Token(ctx)
		if err != nil {
			t.log.Error(ctx, "error getting auth token", "error", err)
		} else if token != "" {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}

	t.log.Debug(ctx, "request", "method", r.Method, "path", r.URL.Path,
		"request_id", r.Header.Get(common.RequestIDHeaderName))

	return t.base.RoundTrip(r)
}
