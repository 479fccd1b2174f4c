package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func traceIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		*captured = c.GetString("trace_id")
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestTraceIDMiddleware(t *testing.T) {
	t.Run("generates an id when the caller sends none", func(t *testing.T) {
		var captured string
		r := traceIDRouter(&captured)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if captured == "" {
			t.Fatal("trace_id not set on the request context")
		}
		if got := w.Header().Get("X-Trace-ID"); got != captured {
			t.Fatalf("response header = %q, context = %q", got, captured)
		}
	})

	t.Run("keeps an id supplied by the caller", func(t *testing.T) {
		var captured string
		r := traceIDRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "retry-7f3a")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if captured != "retry-7f3a" {
			t.Fatalf("trace_id = %q, want the caller's id", captured)
		}
		if got := w.Header().Get("X-Trace-ID"); got != "retry-7f3a" {
			t.Fatalf("response header = %q, want the caller's id", got)
		}
	})
}
