// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the default cap for JSON request bodies
	// (POST /users). Overridable with the max_body_bytes setting.
	MaxJSONBodySize = 1 << 20 // 1 MB
)
