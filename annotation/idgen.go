package annotation

import "sync"

// IDGenerator hands out incremental record IDs
type IDGenerator struct {
	id int64
	sync.Mutex
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (id *IDGenerator) GetNext() int64 {
	id.Lock()
	defer id.Unlock()
	id.id++
	return id.id
}

// Observe moves the counter past v so IDs already in use are not handed out
// again
func (id *IDGenerator) Observe(v int64) {
	id.Lock()
	defer id.Unlock()
	if v > id.id {
		id.id = v
	}
}
