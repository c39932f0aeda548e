package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

// maxLoggedBody caps how much of a request or response body ends up in a log line.
const maxLoggedBody = 4 << 10

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-secret-key":  {},
}

type teeResponseWriter struct {
	http.ResponseWriter
	body *bytes.Buffer
}

func (w *teeResponseWriter) Write(b []byte) (int, error) {
	if room := maxLoggedBody - w.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		w.body.Write(b[:room])
	}
	return w.ResponseWriter.Write(b)
}

func (w *teeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func readRequestBody(req *http.Request) []byte {
	if req.Body == nil {
		return nil
	}
	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}

func maskedHeaders(h http.Header) string {
	headers := make(map[string][]string, len(h))
	for k, vals := range h {
		if _, ok := sensitiveHeaders[strings.ToLower(k)]; ok {
			headers[k] = []string{"*****"}
			continue
		}
		headers[k] = vals
	}
	b, _ := json.Marshal(headers)
	return string(b)
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}

// Logger writes one access log line per request, at a level derived from
// the response status.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			reqBody := readRequestBody(req)

			tee := &teeResponseWriter{ResponseWriter: c.Response().Writer, body: new(bytes.Buffer)}
			c.Response().Writer = tee

			if err := next(c); err != nil {
				c.Error(err)
			}

			ctx := c.Request().Context()
			res := c.Response()
			latency := time.Since(start)

			fields := []xlog.Field{
				xlog.String("method", req.Method),
				xlog.String("url_path", req.URL.String()),
				xlog.String("route", c.Path()),
				xlog.String("request_body", truncate(reqBody)),
				xlog.String("request_header", maskedHeaders(req.Header)),
				xlog.Int("status", res.Status),
				xlog.String("response", tee.body.String()),
				xlog.Duration("latency", latency),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(ctx, message, fields...)
			case res.Status >= http.StatusMultipleChoices:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
