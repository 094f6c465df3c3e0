package engine

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
)

// AssetReadiness is polled during loading; implementations publish readiness from their own goroutine
type AssetReadiness interface {
	Ready() bool
}

// assetWait tracks the bounded loading wait
type assetWait struct {
	src     AssetReadiness
	waited  time.Duration
	limit   time.Duration
	missing bool
}

// poll advances the wait and reports whether loading is finished
func (a *assetWait) poll(dt time.Duration) bool {
	if a.src == nil || a.src.Ready() {
		return true
	}
	a.waited += dt
	if a.waited >= a.limit {
		a.missing = true
		return true
	}
	return false
}

// fraction returns loading progress for the loading screen
func (a *assetWait) fraction() float64 {
	if a.src == nil || a.limit <= 0 {
		return 1
	}
	f := float64(a.waited) / float64(a.limit)
	if f > 1 {
		return 1
	}
	return f
}

func newAssetWait(src AssetReadiness) assetWait {
	return assetWait{src: src, limit: constant.AssetLoadTimeout}
}
