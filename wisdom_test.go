package fftnd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWisdomFileRoundTrip(t *testing.T) {
	ClearWisdom()
	defer ClearWisdom()

	// Building plans populates the process-wide cache.
	_, err := NewPlan[complex128]([]int{12, 97}, Forward)
	require.NoError(t, err)

	_, err = NewPlan[complex128]([]int{64}, Inverse)
	require.NoError(t, err)

	count := WisdomLen()
	require.GreaterOrEqual(t, count, 2)

	path := filepath.Join(t.TempDir(), "wisdom.txt")
	require.NoError(t, ExportWisdom(path))

	ClearWisdom()
	assert.Zero(t, WisdomLen())

	require.NoError(t, ImportWisdom(path))
	assert.Equal(t, count, WisdomLen())
}

func TestWisdomImportFromString(t *testing.T) {
	ClearWisdom()
	defer ClearWisdom()

	data := "# algo-fftnd wisdom v1\n8|forward|complex|axes=0\t0:4,2@mixed\n"

	require.NoError(t, ImportWisdomFromString(data))
	assert.Equal(t, 1, WisdomLen())

	assert.Error(t, ImportWisdomFromString("broken line without tab\n"))
}

func TestWisdomStaleEntryReplanned(t *testing.T) {
	ClearWisdom()
	defer ClearWisdom()

	// The recorded factors multiply to 9, not 8. Planning must discard the
	// entry, fall back to fresh factorization and repair the cache.
	data := "# algo-fftnd wisdom v1\n8|forward|complex|axes=0\t0:3,3@mixed\n"
	require.NoError(t, ImportWisdomFromString(data))

	plan, err := NewPlan[complex128]([]int{8}, Forward)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, plan.Meta().Axes[0].Factors)

	in := make([]complex128, 8)
	in[0] = 1

	out := make([]complex128, 8)
	require.NoError(t, plan.Transform(out, in))

	for i, v := range out {
		assert.InDelta(t, 1, real(v), 1e-12, "bin %d", i)
		assert.InDelta(t, 0, imag(v), 1e-12, "bin %d", i)
	}

	path := filepath.Join(t.TempDir(), "wisdom.txt")
	require.NoError(t, ExportWisdom(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "0:4,2@mixed")
	assert.NotContains(t, string(raw), "0:3,3@mixed")
}

func TestWisdomImportMissingFile(t *testing.T) {
	t.Parallel()

	err := ImportWisdom(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWisdomRecalledPlanMatches(t *testing.T) {
	ClearWisdom()
	defer ClearWisdom()

	shape := []int{24, 35}

	first, err := NewPlan[complex128](shape, Forward)
	require.NoError(t, err)

	// Round the cache through its serialized form, then rebuild.
	path := filepath.Join(t.TempDir(), "wisdom.txt")
	require.NoError(t, ExportWisdom(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "24x35|forward|complex")

	ClearWisdom()
	require.NoError(t, ImportWisdom(path))

	second, err := NewPlan[complex128](shape, Forward)
	require.NoError(t, err)

	// The recalled decomposition must match the freshly planned one.
	assert.Equal(t, first.Meta().Axes, second.Meta().Axes)

	in := make([]complex128, first.Len())
	for i := range in {
		in[i] = complex(float64(i%7), float64(i%5))
	}

	a := make([]complex128, first.Len())
	b := make([]complex128, first.Len())

	require.NoError(t, first.Transform(a, in))
	require.NoError(t, second.Transform(b, in))

	assert.Equal(t, a, b)
}
