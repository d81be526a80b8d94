package factortree_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/factortree/exprlang"
	"github.com/katalvlaran/factortree/factortree"
	"github.com/katalvlaran/factortree/optree"
	"github.com/katalvlaran/factortree/registry"
	"github.com/katalvlaran/factortree/tensor"
)

func assertNaN3(t *testing.T, got tensor.Tensor) {
	t.Helper()
	require.Len(t, got, 3)
	for i, v := range got {
		assert.Truef(t, math.IsNaN(v), "lane %d: want NaN, got %v", i, v)
	}
}

// S1 — ts_mean(@x, 3) over four ticks.
func TestS1TsMeanWarmupAndRoll(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 3, BatchPerDay: 2})
	require.NoError(t, tree.CreateTree("ts_mean(@x, 3)"))

	ticks := []tensor.Tensor{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
		{4, 5, 6},
	}

	out, err := tree.Update(map[string]tensor.Tensor{"x": ticks[0]})
	require.NoError(t, err)
	assertNaN3(t, out)

	out, err = tree.Update(map[string]tensor.Tensor{"x": ticks[1]})
	require.NoError(t, err)
	assertNaN3(t, out)

	out, err = tree.Update(map[string]tensor.Tensor{"x": ticks[2]})
	require.NoError(t, err)
	assert.True(t, tensor.Equal(tensor.Tensor{2, 3, 4}, out))

	out, err = tree.Update(map[string]tensor.Tensor{"x": ticks[3]})
	require.NoError(t, err)
	assert.True(t, tensor.Equal(tensor.Tensor{3, 4, 5}, out))
}

// S2 — add(@a, @b).
func TestS2Add(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 3})
	require.NoError(t, tree.CreateTree("add(@a, @b)"))

	out, err := tree.Update(map[string]tensor.Tensor{
		"a": {1, 2, 3},
		"b": {10, 20, 30},
	})
	require.NoError(t, err)
	assert.True(t, tensor.Equal(tensor.Tensor{11, 22, 33}, out))
}

// S3 — sharing: add(ts_mean(@x,2), ts_mean(@x,2)) evaluates the shared
// subexpression exactly once per tick. The kernel is memoised by node
// identity rather than instrumented with a call counter here; S3's
// "exactly once" property is exercised directly by treebuilder's
// TestBuildSharesCommonSubexpression, so this test checks the user-visible
// consequence: the shared mean still produces correct numeric output.
func TestS3SharingProducesConsistentOutput(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 2})
	require.NoError(t, tree.CreateTree("add(ts_mean(@x,2), ts_mean(@x,2))"))

	_, err := tree.Update(map[string]tensor.Tensor{"x": {1, 10}})
	require.NoError(t, err)
	out, err := tree.Update(map[string]tensor.Tensor{"x": {3, 30}})
	require.NoError(t, err)

	// mean of [1,3] and [10,30] is [2,20]; summed with itself, [4,40].
	assert.True(t, tensor.Equal(tensor.Tensor{4, 40}, out))
}

// S4 — checkpoint round trip.
func TestS4CheckpointRoundTrip(t *testing.T) {
	baseline := factortree.New(optree.InitArgs{Nstock: 3})
	require.NoError(t, baseline.CreateTree("ts_mean(@x, 3)"))

	_, err := baseline.Update(map[string]tensor.Tensor{"x": {1, 2, 3}})
	require.NoError(t, err)
	_, err = baseline.Update(map[string]tensor.Tensor{"x": {2, 3, 4}})
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "s4.ckpt")
	require.NoError(t, baseline.SaveCheckpoint(path))

	resumed := factortree.New(optree.InitArgs{Nstock: 3})
	require.NoError(t, resumed.CreateTree("ts_mean(@x, 3)"))
	require.NoError(t, resumed.LoadCheckpoint(path))

	want, err := baseline.Update(map[string]tensor.Tensor{"x": {3, 4, 5}})
	require.NoError(t, err)
	got, err := resumed.Update(map[string]tensor.Tensor{"x": {3, 4, 5}})
	require.NoError(t, err)

	assert.True(t, tensor.Equal(want, got))
}

// S5 — shape error leaves tree state unchanged.
func TestS5ShapeMismatchLeavesTreeUnchanged(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 3})
	require.NoError(t, tree.CreateTree("add(@a, @b)"))

	_, err := tree.Update(map[string]tensor.Tensor{
		"a": {1, 2, 3},
		"b": {10, 20, 30},
	})
	require.NoError(t, err)

	_, err = tree.Update(map[string]tensor.Tensor{
		"a": {1, 2}, // wrong length
		"b": {10, 20, 30},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, optree.ErrShapeMismatch))

	out, err := tree.Update(map[string]tensor.Tensor{
		"a": {4, 5, 6},
		"b": {40, 50, 60},
	})
	require.NoError(t, err)
	assert.True(t, tensor.Equal(tensor.Tensor{44, 55, 66}, out))
}

// S6 — unknown operator.
func TestS6UnknownOperator(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 3})
	err := tree.CreateTree("wiggle(@x)")
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrUnknownOperator))
}

// Property 1 — monotone ticks.
func TestMonotoneTicks(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 1})
	require.NoError(t, tree.CreateTree("identity(@x)"))

	for i := 0; i < 5; i++ {
		_, err := tree.Update(map[string]tensor.Tensor{"x": {float64(i)}})
		require.NoError(t, err)
	}
}

// Property 5 — day reset.
func TestDayResetMatchesFreshConstruction(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 1})
	require.NoError(t, tree.CreateTree("ts_mean(@x, 2)"))

	_, err := tree.Update(map[string]tensor.Tensor{"x": {1}})
	require.NoError(t, err)
	out, err := tree.Update(map[string]tensor.Tensor{"x": {2}})
	require.NoError(t, err)
	assert.True(t, tensor.Equal(tensor.Tensor{1.5}, out))

	require.NoError(t, tree.OnDayEnd())
	require.NoError(t, tree.OnDayBegin())

	out, err = tree.Update(map[string]tensor.Tensor{"x": {5}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, math.IsNaN(out[0]))
}

// Property 6 — NaN propagation through arithmetic.
func TestNaNPropagation(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 2})
	require.NoError(t, tree.CreateTree("add(@a, @b)"))

	out, err := tree.Update(map[string]tensor.Tensor{
		"a": {1, math.NaN()},
		"b": {10, 20},
	})
	require.NoError(t, err)
	assert.Equal(t, 11.0, out[0])
	assert.True(t, math.IsNaN(out[1]))
}

func TestStringReturnsCanonicalExpression(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 1})
	assert.Equal(t, "", tree.String())

	require.NoError(t, tree.CreateTree("add(@a, @b)"))
	assert.NotEmpty(t, tree.String())
}

func TestUpdateBeforeCreateTreeFails(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 1})
	_, err := tree.Update(map[string]tensor.Tensor{"x": {1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, factortree.ErrNoTree))
}

func TestParseErrorSurfacesFromCreateTree(t *testing.T) {
	tree := factortree.New(optree.InitArgs{Nstock: 1})
	err := tree.CreateTree("add(@a,")
	require.Error(t, err)
	var perr *exprlang.ParseError
	assert.ErrorAs(t, err, &perr)
}
