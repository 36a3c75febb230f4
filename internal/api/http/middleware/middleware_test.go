package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func newTestRouter(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(log))
	r.Use(RequestLogger(log))
	r.Use(ErrorHandler(log))
	r.Use(JSONBody())
	r.Use(RejectMalformedBody())
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequestIDMiddleware(t *testing.T) {
	log, _ := newObservedLogger()
	r := newTestRouter(log)
	r.GET("/rid", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	t.Run("generates when absent", func(t *testing.T) {
		rr := perform(r, http.MethodGet, "/rid", "")
		rid := rr.Header().Get(RequestIDHeader)
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, rr.Body.String())
	})

	t.Run("echoes incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rid", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rr.Body.String())
	})
}

func TestRequestLogger(t *testing.T) {
	log, logs := newObservedLogger()
	r := newTestRouter(log)
	r.GET("/things", func(c *gin.Context) {
		assert.Equal(t, "q=go&page=2", c.Request.URL.RawQuery)
		c.Status(http.StatusNoContent)
	})

	perform(r, http.MethodGet, "/things?q=go&page=2", "")

	arrivals := logs.FilterMessage("HTTP request").All()
	require.Len(t, arrivals, 1)
	fields := arrivals[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/things", fields["path"])
	assert.Equal(t, "q=go&page=2", fields["query"])
	assert.NotEmpty(t, fields["request_id"])

	done := logs.FilterMessage("HTTP response").All()
	require.Len(t, done, 1)
	assert.EqualValues(t, http.StatusNoContent, done[0].ContextMap()["status"])
}

func TestJSONBody(t *testing.T) {
	log, _ := newObservedLogger()
	r := newTestRouter(log)
	echo := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"body": Body(c)})
	}
	r.POST("/echo", echo)
	r.PUT("/echo", echo)
	r.PATCH("/echo", echo)
	r.GET("/echo", echo)
	r.DELETE("/echo", echo)

	t.Run("parses mutating methods", func(t *testing.T) {
		for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodPatch} {
			rr := perform(r, m, "/echo", `{"title":"AB"}`)
			assert.Equal(t, http.StatusOK, rr.Code, m)
			assert.JSONEq(t, `{"body":{"title":"AB"}}`, rr.Body.String(), m)
		}
	})

	t.Run("empty body is nil", func(t *testing.T) {
		rr := perform(r, http.MethodPost, "/echo", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"body":null}`, rr.Body.String())
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rr := perform(r, http.MethodPost, "/echo", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"invalid JSON body"}`, rr.Body.String())
	})

	t.Run("other methods ignore body", func(t *testing.T) {
		for _, m := range []string{http.MethodGet, http.MethodDelete} {
			rr := perform(r, m, "/echo", `not json at all`)
			assert.Equal(t, http.StatusOK, rr.Code, m)
			assert.JSONEq(t, `{"body":null}`, rr.Body.String(), m)
		}
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		big := `{"title":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		rr := perform(r, http.MethodPost, "/echo", big)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	log, logs := newObservedLogger()
	r := newTestRouter(log)
	r.GET("/panic", func(c *gin.Context) {
		panic("secret detail")
	})
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("db exploded: password=hunter2"))
	})
	r.GET("/handled", func(c *gin.Context) {
		_ = c.Error(errors.New("noted"))
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		rr := perform(r, http.MethodGet, "/panic", "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "secret")
		assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
	})

	t.Run("attached error becomes 500", func(t *testing.T) {
		rr := perform(r, http.MethodGet, "/fail", "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "hunter2")

		entries := logs.FilterMessage("Unhandled error").All()
		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0].ContextMap()["errors"], "db exploded: password=hunter2")
	})

	t.Run("written response is kept", func(t *testing.T) {
		rr := perform(r, http.MethodGet, "/handled", "")
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})
}
