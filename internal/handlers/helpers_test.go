package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

var bangkok = time.FixedZone("ICT", 7*60*60)

// envelope mirrors SuccessResponse with the payload left undecoded
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Notice  *Notice         `json:"notice"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newRequestContext builds an echo context for a handler call. query may be nil.
func newRequestContext(e *echo.Echo, method, path string, query url.Values, body string) (echo.Context, *httptest.ResponseRecorder) {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	return c, rec
}

func withParams(c echo.Context, pairs ...string) echo.Context {
	names := make([]string, 0, len(pairs)/2)
	values := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		names = append(names, pairs[i])
		values = append(values, pairs[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func decodeEnvelope(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return env
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}
