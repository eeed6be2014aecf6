package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores raw model responses between runs. Annotation calls are
// expensive and re-runs over the same corpus with the same prompt are
// common while tuning the downstream pipeline, so replaying a stored
// response saves real money. A ttl of zero means the store's default.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for one generate call. Provider, model and
// the fully rendered prompt all participate, so changing any of them
// never replays a stale response. The NUL separator cannot occur in the
// inputs, ruling out ambiguous concatenations.
func Key(provider, model, prompt string) string {
	h := sha256.New()
	h.Write([]byte(provider))
	h.Write([]byte{0})
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return "argumint:v1:" + hex.EncodeToString(h.Sum(nil))
}
