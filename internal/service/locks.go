package service

import "sync"

const lockShards = 64

// Locks serializes mutating operations per situation id. Two operations on
// the same id never interleave; distinct ids proceed in parallel (modulo
// shard collisions, which only cost throughput).
type Locks struct {
	shards [lockShards]sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{}
}

func (l *Locks) Lock(id int64) func() {
	m := &l.shards[uint64(id)%lockShards]
	m.Lock()
	return m.Unlock
}
