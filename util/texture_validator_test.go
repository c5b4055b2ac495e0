// api/util/texture_validator_test.go
package util_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muralehq/murale/api/util"
)

func TestTextureValidator_Validate(t *testing.T) {
	v := util.NewTextureValidator()

	assert.False(t, v.Validate(""))
	assert.False(t, v.Validate("not-a-url"))
	assert.True(t, v.Validate("http://example.com/x.png"))
	assert.True(t, v.Validate("https://cdn.example.com/textures/brick.jpg"))

	// Second call returns the cached verdict.
	assert.True(t, v.Validate("http://example.com/x.png"))
	assert.False(t, v.Validate("not-a-url"))
}

func TestTextureValidator_MarkOverridesDefault(t *testing.T) {
	v := util.NewTextureValidator()
	path := "https://cdn.example.com/textures/missing.png"

	assert.True(t, v.Validate(path)) // optimistic default

	v.MarkInvalid(path)
	assert.False(t, v.Validate(path))

	v.MarkValid(path)
	assert.True(t, v.Validate(path))
}

func TestTextureValidator_MarkValidBeatsHeuristic(t *testing.T) {
	v := util.NewTextureValidator()

	// An override recorded before any Validate call sticks, even for a path
	// the heuristic would reject.
	v.MarkValid("file:///tmp/local.png")
	assert.True(t, v.Validate("file:///tmp/local.png"))
}

func TestTextureValidator_ClearCache(t *testing.T) {
	v := util.NewTextureValidator()
	path := "https://cdn.example.com/textures/wood.png"

	v.MarkInvalid(path)
	assert.False(t, v.Validate(path))

	v.ClearCache()
	assert.True(t, v.Validate(path)) // back to the default heuristic
}

func TestTextureValidator_ValidateBatch(t *testing.T) {
	v := util.NewTextureValidator()
	v.MarkInvalid("https://cdn.example.com/textures/broken.png")

	got := v.ValidateBatch([]string{
		"https://cdn.example.com/textures/a.png",
		"not-a-url",
		"https://cdn.example.com/textures/broken.png",
		"",
		"http://cdn.example.com/textures/b.png",
	})

	assert.Equal(t, []string{
		"https://cdn.example.com/textures/a.png",
		"http://cdn.example.com/textures/b.png",
	}, got)
}

func TestTextureValidator_ConcurrentAccess(t *testing.T) {
	v := util.NewTextureValidator()
	paths := []string{
		"https://cdn.example.com/t/1.png",
		"https://cdn.example.com/t/2.png",
		"not-a-url",
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, p := range paths {
				v.Validate(p)
			}
			if i%2 == 0 {
				v.MarkInvalid(paths[0])
			} else {
				v.MarkValid(paths[0])
			}
		}(i)
	}
	wg.Wait()

	// Whichever override won, the verdicts for untouched paths are intact.
	assert.True(t, v.Validate(paths[1]))
	assert.False(t, v.Validate(paths[2]))
}
