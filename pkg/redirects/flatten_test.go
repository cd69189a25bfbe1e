package redirects

// TEST TYPE: Unit Tests
// PURPOSE: Test chain flattening, cycle detection, and casing restoration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/types"
)

func pair(from, to string) types.Pair {
	return types.Pair{From: from, To: to}
}

func TestFlattenChain(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/C"),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Cycles)
	assert.Equal(t, []types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/C"),
		pair("/en-US/docs/B", "/en-US/docs/C"),
	}, result.Pairs)
}

func TestFlattenLongChain(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/C", "/en-US/docs/D"),
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/C"),
	})
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/D"),
		pair("/en-US/docs/B", "/en-US/docs/D"),
		pair("/en-US/docs/C", "/en-US/docs/D"),
	}, result.Pairs)
}

func TestFlattenCycle(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/A"),
	})
	require.NoError(t, err)

	// Both entries are dropped; the cycle is reported with its full path
	assert.Empty(t, result.Pairs)
	require.Len(t, result.Cycles, 1)
	assert.Equal(t, []string{"/en-US/docs/A", "/en-US/docs/B", "/en-US/docs/A"}, result.Cycles[0])
}

func TestFlattenSelfCycle(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/a"),
	})
	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
	require.Len(t, result.Cycles, 1)
}

func TestFlattenChainIntoCycleDropsWholeChain(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/D", "/en-US/docs/A"),
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/A"),
	})
	require.NoError(t, err)

	// D's own chain never terminates, so it contributes nothing either,
	// and the cycle is reported exactly once.
	assert.Empty(t, result.Pairs)
	assert.Len(t, result.Cycles, 1)
}

func TestFlattenCycleIsLocalToItsChain(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/A"),
		pair("/en-US/docs/X", "/en-US/docs/Y"),
	})
	require.NoError(t, err)

	// The healthy chain is untouched by the unrelated cycle
	assert.Equal(t, []types.Pair{pair("/en-US/docs/X", "/en-US/docs/Y")}, result.Pairs)
	assert.Len(t, result.Cycles, 1)
}

func TestFlattenEdgeConflict(t *testing.T) {
	_, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/a", "/en-US/docs/C"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEdgeConflict))
}

func TestFlattenPreservesFirstSeenCasing(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/Web/API", "/en-US/docs/Web/HTTP"),
		pair("/en-US/docs/Other", "/en-US/docs/WEB/api"),
	})
	require.NoError(t, err)

	// Chain: Other → web/api → web/http. The casing recorded first wins
	// for every lowercased node.
	assert.Equal(t, []types.Pair{
		pair("/en-US/docs/Other", "/en-US/docs/Web/HTTP"),
		pair("/en-US/docs/Web/API", "/en-US/docs/Web/HTTP"),
	}, result.Pairs)
}

func TestFlattenMixedCaseChain(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/MIDDLE"),
		pair("/en-US/docs/Middle", "/en-US/docs/End"),
	})
	require.NoError(t, err)
	assert.Equal(t, []types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/End"),
		pair("/en-US/docs/MIDDLE", "/en-US/docs/End"),
	}, result.Pairs)
}

func TestFlattenIdempotent(t *testing.T) {
	input := []types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/C"),
		pair("/fr/docs/X", "https://example.com/x"),
		pair("/fr/docs/Y", "/fr/"),
	}

	once, err := Flatten(input)
	require.NoError(t, err)
	twice, err := Flatten(once.Pairs)
	require.NoError(t, err)

	assert.Equal(t, once.Pairs, twice.Pairs)
	assert.Empty(t, twice.Cycles)
}

func TestFlattenOutputHasNoMultiHopPaths(t *testing.T) {
	result, err := Flatten([]types.Pair{
		pair("/en-US/docs/A", "/en-US/docs/B"),
		pair("/en-US/docs/B", "/en-US/docs/C"),
		pair("/en-US/docs/D", "/en-US/docs/A"),
		pair("/en-US/docs/E", "/en-US/docs/E2"),
	})
	require.NoError(t, err)

	sources := types.SourceSet(result.Pairs)
	for _, p := range result.Pairs {
		if _, ok := sources[strings.ToLower(p.To)]; ok {
			t.Errorf("target %s of %s still has an outgoing edge", p.To, p.From)
		}
	}
}

func TestFlattenDeterministicOrder(t *testing.T) {
	a := []types.Pair{
		pair("/en-US/docs/Z", "/en-US/docs/T"),
		pair("/en-US/docs/A", "/en-US/docs/T"),
		pair("/en-US/docs/M", "/en-US/docs/T"),
	}
	b := []types.Pair{a[2], a[0], a[1]}

	ra, err := Flatten(a)
	require.NoError(t, err)
	rb, err := Flatten(b)
	require.NoError(t, err)

	assert.Equal(t, ra.Pairs, rb.Pairs)
	assert.Equal(t, "/en-US/docs/A", ra.Pairs[0].From)
}

func TestFlattenEmpty(t *testing.T) {
	result, err := Flatten(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
	assert.Empty(t, result.Cycles)
}

func TestCycleError(t *testing.T) {
	assert.NoError(t, FlattenResult{}.CycleError())

	err := FlattenResult{Cycles: [][]string{{"/en-US/docs/A", "/en-US/docs/B", "/en-US/docs/A"}}}.CycleError()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRedirectCycle))
	assert.Contains(t, err.Error(), "/en-US/docs/A -> /en-US/docs/B -> /en-US/docs/A")
}
