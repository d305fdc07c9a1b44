// Package volume reports capacity and free space for the volume containing
// a path.
package volume

import (
	"golang.org/x/sync/singleflight"

	"github.com/johnhelf/folder-insight/pkg/normpath"
)

// Stats describes the volume a path lives on. All values are bytes.
type Stats struct {
	Total     uint64 `json:"total"`
	Free      uint64 `json:"free"`
	Available uint64 `json:"available"`
}

// Prober queries volume statistics. Concurrent queries for the same path are
// collapsed into a single syscall.
type Prober struct {
	group singleflight.Group
}

func NewProber() *Prober {
	return &Prober{}
}

// StatsFor returns the stats of the volume containing path.
func (p *Prober) StatsFor(path string) (Stats, error) {
	path = normpath.Normalize(path)
	v, err, _ := p.group.Do(path, func() (any, error) {
		return statsFor(path)
	})
	if err != nil {
		return Stats{}, err
	}
	return v.(Stats), nil
}
