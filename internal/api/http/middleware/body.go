package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	BodyKey      = "request_body"
	BodyErrorKey = "request_body_error"

	// MaxBodyBytes caps how much of a request body is read for JSON parsing.
	MaxBodyBytes = 1 << 20
)

var ErrBodyTooLarge = errors.New("request body too large")

// BodyParseError reports a request body that is not valid JSON.
type BodyParseError struct {
	Err error
}

func (e *BodyParseError) Error() string {
	return fmt.Sprintf("parse body: %v", e.Err)
}

func (e *BodyParseError) Unwrap() error {
	return e.Err
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// JSONBody decodes the body of POST, PUT and PATCH requests into a generic
// value stored under BodyKey. Other methods pass through untouched. Parse
// failures are recorded under BodyErrorKey for RejectMalformedBody; this step
// never writes a response itself.
func JSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hasBody(c.Request.Method) || c.Request.Body == nil {
			c.Next()
			return
		}

		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodyBytes+1))
		if err != nil {
			c.Set(BodyErrorKey, &BodyParseError{Err: err})
			c.Next()
			return
		}
		if len(raw) > MaxBodyBytes {
			c.Set(BodyErrorKey, ErrBodyTooLarge)
			c.Next()
			return
		}

		var body any
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				c.Set(BodyErrorKey, &BodyParseError{Err: err})
				c.Next()
				return
			}
		}
		c.Set(BodyKey, body)

		c.Next()
	}
}

// RejectMalformedBody short-circuits requests whose body JSONBody could not
// parse.
func RejectMalformedBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get(BodyErrorKey)
		err, ok := v.(error)
		if !ok || err == nil {
			c.Next()
			return
		}

		var parseErr *BodyParseError
		switch {
		case errors.Is(err, ErrBodyTooLarge):
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Payload Too Large"})
		case errors.As(err, &parseErr):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		default:
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// Body returns the decoded request body, or nil when there was none.
func Body(c *gin.Context) any {
	v, _ := c.Get(BodyKey)
	return v
}
