package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Request wraps *http.Request with helpers mirroring Laravel's
// Illuminate\Http\Request.
type Request struct {
	r *http.Request
}

// NewRequest wraps a request.
func NewRequest(r *http.Request) *Request {
	return &Request{r: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.r }

// Bind decodes the JSON body into v.
func (req *Request) Bind(v any) error {
	defer req.r.Body.Close()
	return json.NewDecoder(req.r.Body).Decode(v)
}

// Query returns a query-string value, falling back to def.
func (req *Request) Query(key, def string) string {
	if v := req.r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.r.Header.Get(key)
}

// BearerToken extracts the token from an Authorization: Bearer header.
func (req *Request) BearerToken() string {
	auth := req.r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// IsJSON reports whether the request carries a JSON body or expects one back.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.r.Header.Get("Content-Type"), "application/json") ||
		strings.Contains(req.r.Header.Get("Accept"), "application/json")
}
