// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxJSONBodySize caps API request bodies. The largest legitimate body
	// is a workout with its exercise list, well under this.
	MaxJSONBodySize = 1 << 20 // 1 MB
)
