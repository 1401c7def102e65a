package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

const maxLoggedBody = 8 << 10

var sensitiveFields = []string{"password", "token", "refreshToken", "accessToken"}

// RequestLogger logs one line per request. JSON bodies are captured up to
// maxLoggedBody bytes with sensitive fields redacted before anything
// reaches the log.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		body := captureBody(c)

		c.Next()

		log.Printf(
			"request method=%s path=%s query=%s status=%d latency=%s client_ip=%s request_id=%s body=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Request.URL.RawQuery,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			c.GetString("request_id"),
			body,
		)
	}
}

func captureBody(c *gin.Context) string {
	if c.Request.Body == nil || c.ContentType() != "application/json" {
		return ""
	}

	orig := c.Request.Body
	raw, err := io.ReadAll(io.LimitReader(orig, maxLoggedBody))
	if err != nil {
		return ""
	}
	// Hand the handler back an intact body.
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), orig))

	return redact(raw)
}

// redact replaces sensitive fields in a JSON object body. Non-object bodies
// are not logged at all.
func redact(raw []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}
	for _, key := range sensitiveFields {
		if _, ok := fields[key]; ok {
			fields[key] = "***REDACTED***"
		}
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(out)
}

// ErrorLogger recovers panics into a JSON 500 and logs request errors.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				logRequestError(c, start, "panic", fmt.Sprintf("%v", recovered), debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					logRequestError(c, start, "http_error", fmt.Sprintf("status=%d", c.Writer.Status()), nil)
				}
				return
			}

			for _, err := range c.Errors {
				logRequestError(c, start, fmt.Sprintf("%v", err.Type), err.Error(), nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, errType string, message string, stack []byte) {
	log.Printf(
		"request_error type=%s status=%d method=%s path=%s client_ip=%s user_id=%d request_id=%s latency=%s error=%q stack=%s",
		errType,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		c.GetInt64("user_id"),
		c.GetString("request_id"),
		time.Since(start),
		message,
		string(stack),
	)
}
