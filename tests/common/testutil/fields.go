//go:build unit || e2e

package testutil

// Field overrides one key of a DtoMap body; a nil value removes the key
// entirely, which is how "field missing" cases are expressed.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
