package pathutil

import "sync"

const (
	defaultPathCap = 8  // most schema locations are shallower
	maxPathCap     = 64 // don't pool builders from very deep walks
)

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, defaultPathCap)}
	},
}

// Get retrieves a reset PathBuilder from the pool.
func Get() *PathBuilder {
	p := pathBuilderPool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns a PathBuilder to the pool unless it has grown oversized.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	pathBuilderPool.Put(p)
}
