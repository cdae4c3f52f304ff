package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCandidates(t *testing.T) {
	t.Run("seed leads the list", func(t *testing.T) {
		candidates := buildCandidates("windows-1256", DefaultFallbacks)

		assert.Equal(t, "windows-1256", candidates[0])
		assert.Len(t, candidates, len(DefaultFallbacks), "seed already present in fallbacks must not appear twice")
	})

	t.Run("novel seed extends the list", func(t *testing.T) {
		candidates := buildCandidates("IBM866", DefaultFallbacks)

		assert.Equal(t, "IBM866", candidates[0])
		assert.Len(t, candidates, len(DefaultFallbacks)+1)
		assert.Equal(t, DefaultFallbacks, candidates[1:])
	})

	t.Run("empty seed yields fallbacks verbatim", func(t *testing.T) {
		candidates := buildCandidates("", DefaultFallbacks)

		assert.Equal(t, DefaultFallbacks, candidates)
	})

	t.Run("dedup is exact string match", func(t *testing.T) {
		// A differently spelled label is a different candidate; the dedup
		// never normalizes.
		candidates := buildCandidates("utf-8", DefaultFallbacks)

		assert.Equal(t, "utf-8", candidates[0])
		assert.Contains(t, candidates, "UTF-8")
		assert.Len(t, candidates, len(DefaultFallbacks)+1)
	})

	t.Run("duplicate fallbacks collapse", func(t *testing.T) {
		candidates := buildCandidates("a", []string{"b", "a", "b", "c"})

		assert.Equal(t, []string{"a", "b", "c"}, candidates)
	})
}
