package response

import (
	"net/http"

	pkgcontext "github.com/quickdeliver/backend/internal/pkg/context"
)

// RequestIDFromContext extracts the request id set by the middleware.
func RequestIDFromContext(r *http.Request) string {
	return pkgcontext.GetRequestID(r.Context())
}
