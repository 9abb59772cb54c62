package shape

import (
	"slices"

	"github.com/gogpu/shape/canvas"
)

// gradientCache remembers the gradients a shape's last paint used and
// keeps their reference counts in the surface table balanced: each key
// is retained once per paint that uses it and released once when the
// next paint, or Destroy, supersedes that paint.
type gradientCache struct {
	old []canvas.GradientKey
}

// update retains the keys used by the paint that just finished, then
// releases the previous paint's keys. Retaining first keeps a key shared
// by both paints alive.
func (g *gradientCache) update(t *canvas.GradientTable, used []canvas.GradientKey) {
	if t == nil {
		return
	}
	for _, k := range used {
		if err := t.Retain(k); err != nil {
			Logger().Error("shape: gradient retain", "key", string(k), "err", err)
		}
	}
	g.release(t)
	g.old = slices.Clone(used)
}

// release drops the references held for the last paint. Definitions
// whose count reaches zero are removed by the table.
func (g *gradientCache) release(t *canvas.GradientTable) {
	if t == nil {
		g.old = nil
		return
	}
	for _, k := range g.old {
		removed, err := t.Release(k)
		if err != nil {
			Logger().Error("shape: gradient release", "key", string(k), "err", err)
			continue
		}
		if removed {
			Logger().Debug("shape: gradient removed", "key", string(k))
		}
	}
	g.old = nil
}

// keys returns the keys currently held.
func (g *gradientCache) keys() []canvas.GradientKey {
	return slices.Clone(g.old)
}
