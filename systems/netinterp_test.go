package systems

import (
	"testing"

	"github.com/automoto/netinterp/components"
	"github.com/automoto/netinterp/interp"
	"github.com/automoto/netinterp/shared/netcomponents"
	"github.com/automoto/netinterp/shared/netconfig"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newTestApplier() *SnapshotApplier {
	return NewSnapshotApplier(func() *interp.Buffer {
		return interp.NewBuffer(interp.ModeLerp, 0.1)
	})
}

func transformAt(x float64) netcomponents.NetTransformData {
	tf := netcomponents.NewNetTransform(mgl64.Vec3{x, 0, 0})
	tf.Velocity = mgl64.Vec3{0.1, 0, 0}
	return tf
}

func findEntry(t *testing.T, world donburi.World, id esync.NetworkId) *donburi.Entry {
	t.Helper()
	entity := esync.FindByNetworkId(world, id)
	require.True(t, world.Valid(entity), "entity %d not found", id)
	return world.Entry(entity)
}

func TestSnapshotApplier(t *testing.T) {
	t.Parallel()

	t.Run("creates remote entities with a buffer", func(t *testing.T) {
		t.Parallel()
		world := donburi.NewWorld()
		a := newTestApplier()

		body := netcomponents.NetBodyData{Kind: netconfig.BodyOrbit, Color: 0xff8800, Label: "a"}
		a.ApplyEntity(world, 7, []any{transformAt(3), body})

		entry := findEntry(t, world, 7)
		data := components.NetInterp.Get(entry)
		require.NotNil(t, data.Buffer)
		assert.Equal(t, 1, data.Buffer.Len())
		assert.Equal(t, 1, data.Samples)
		assert.Equal(t, mgl64.Vec3{3, 0, 0}, data.RawPosition)
		assert.Equal(t, body, *netcomponents.NetBody.Get(entry))
	})

	t.Run("reuses the entity for later snapshots", func(t *testing.T) {
		t.Parallel()
		world := donburi.NewWorld()
		a := newTestApplier()

		a.ApplyEntity(world, 1, []any{transformAt(0)})
		first := findEntry(t, world, 1).Entity()
		UpdateNetInterp(world, 50)
		a.ApplyEntity(world, 1, []any{transformAt(5)})

		entry := findEntry(t, world, 1)
		assert.Equal(t, first, entry.Entity())
		assert.Equal(t, 2, components.NetInterp.Get(entry).Samples)
		assert.Equal(t, 1, world.Len())
	})

	t.Run("removes entities missing from the snapshot", func(t *testing.T) {
		t.Parallel()
		world := donburi.NewWorld()
		a := newTestApplier()

		a.ApplyEntity(world, 1, []any{transformAt(0)})
		a.ApplyEntity(world, 2, []any{transformAt(0)})
		a.RemoveMissing(world)
		assert.Equal(t, 2, world.Len())

		a.Reset()
		a.ApplyEntity(world, 2, []any{transformAt(1)})
		a.RemoveMissing(world)

		assert.False(t, world.Valid(esync.FindByNetworkId(world, 1)))
		findEntry(t, world, 2)
	})

	t.Run("ignores unknown component data", func(t *testing.T) {
		t.Parallel()
		world := donburi.NewWorld()
		a := newTestApplier()

		a.ApplyEntity(world, 3, []any{"unexpected", 42})
		entry := findEntry(t, world, 3)
		assert.Equal(t, 0, components.NetInterp.Get(entry).Buffer.Len())
	})
}

func TestUpdateNetInterp(t *testing.T) {
	t.Parallel()

	world := donburi.NewWorld()
	a := newTestApplier()

	// Samples every 50ms moving 5 units each, ticks of 25ms.
	x := 0.0
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			a.ApplyEntity(world, 9, []any{transformAt(x)})
			x += 5
		}
		UpdateNetInterp(world, 25)
	}

	entry := findEntry(t, world, 9)
	buf := components.NetInterp.Get(entry).Buffer
	require.Equal(t, interp.StatePlaying, buf.State())

	tf := netcomponents.NetTransform.Get(entry)
	assert.Equal(t, buf.Position(), tf.Position)
	assert.Equal(t, buf.Scale(), tf.Scale)
	// 100ms behind a 0.1 unit/ms stream.
	assert.InDelta(t, buf.PoseTime()*0.1, tf.Position.X(), 1e-9)

	s := SummarizeNetInterp(world)
	assert.Equal(t, 1, s.Entities)
	assert.Equal(t, 1, s.Playing)
	assert.Equal(t, 0, s.Buffering)
	assert.Equal(t, buf.Len(), s.Queued)
}
