package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(req *http.Request) (seenEcho, seenRequest string, rec *httptest.ResponseRecorder) {
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		seenEcho = GetTraceID(c)
		seenRequest, _ = c.Request().Context().Value(RequestIDContextKey).(string)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return seenEcho, seenRequest, rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	seenEcho, seenRequest, rec := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.NotEmpty(seenEcho)
	s.Len(seenEcho, 36)
	s.Equal(seenEcho, seenRequest)
	s.Equal(seenEcho, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-from-proxy")

	seenEcho, seenRequest, rec := s.serve(req)

	s.Equal("trace-from-proxy", seenEcho)
	s.Equal("trace-from-proxy", seenRequest)
	s.Equal("trace-from-proxy", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _, _ := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))
	second, _, _ := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
