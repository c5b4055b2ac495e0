// api/util/texture_validator.go
package util

import (
	"strings"
	"sync"
)

// verdict is the tri-state validity of a texture path. Keeping "never
// checked" distinct from "checked and valid" means an explicit override can
// always be told apart from the optimistic default.
type verdict int

const (
	verdictUnknown verdict = iota
	verdictValid
	verdictInvalid
)

// TextureValidator memoizes a best-effort validity verdict per texture URL so
// render flows do not repeat existence checks. A path with no cached verdict
// is classified optimistically: anything that looks like an http(s) URL is
// treated as valid until a real load attempt reports otherwise via MarkValid
// or MarkInvalid. Entries never expire and the cache is unbounded for the
// process lifetime.
//
// Instances are safe for concurrent use. Two callers racing to record a
// verdict for the same path may overwrite each other, which is tolerable:
// either result is a plausible optimistic default.
type TextureValidator struct {
	mu       sync.RWMutex
	verdicts map[string]verdict
}

func NewTextureValidator() *TextureValidator {
	return &TextureValidator{
		verdicts: make(map[string]verdict),
	}
}

// Validate returns the cached verdict for path, classifying it first if no
// verdict exists. An empty path or one without an http(s) scheme is recorded
// as invalid; everything else is recorded as valid. No remote check is
// performed here.
func (v *TextureValidator) Validate(path string) bool {
	v.mu.RLock()
	cached := v.verdicts[path]
	v.mu.RUnlock()
	if cached != verdictUnknown {
		return cached == verdictValid
	}

	result := verdictInvalid
	if path != "" && hasTextureScheme(path) {
		result = verdictValid
	}

	v.mu.Lock()
	// A concurrent caller may have classified path already; its verdict is
	// just as good as ours.
	if existing := v.verdicts[path]; existing != verdictUnknown {
		result = existing
	} else {
		v.verdicts[path] = result
	}
	v.mu.Unlock()

	return result == verdictValid
}

// ValidateBatch filters paths down to those Validate accepts, preserving
// relative order.
func (v *TextureValidator) ValidateBatch(paths []string) []string {
	valid := make([]string, 0, len(paths))
	for _, path := range paths {
		if v.Validate(path) {
			valid = append(valid, path)
		}
	}
	return valid
}

// MarkValid records that a real load attempt for path succeeded.
func (v *TextureValidator) MarkValid(path string) {
	v.mu.Lock()
	v.verdicts[path] = verdictValid
	v.mu.Unlock()
}

// MarkInvalid records that a real load attempt for path failed, overriding
// the optimistic default.
func (v *TextureValidator) MarkInvalid(path string) {
	v.mu.Lock()
	v.verdicts[path] = verdictInvalid
	v.mu.Unlock()
}

// ClearCache forgets every verdict. Tests use this as their reset hook.
func (v *TextureValidator) ClearCache() {
	v.mu.Lock()
	v.verdicts = make(map[string]verdict)
	v.mu.Unlock()
}

func hasTextureScheme(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
