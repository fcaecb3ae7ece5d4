package gpu

import (
	"fmt"
	"sync"

	"github.com/philipparndt/goprim/pkg/vertex"
)

// MemoryUploader keeps uploaded data in process memory. It stands in for a
// GPU in tests and in headless commands.
type MemoryUploader struct {
	mu     sync.Mutex
	nextID uint32
	data   map[uint32][]byte
	draws  map[uint32]int
}

// NewMemoryUploader returns an empty in-memory backend.
func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{
		data:  make(map[uint32][]byte),
		draws: make(map[uint32]int),
	}
}

// Upload stores the little-endian bytes of buf.
func (m *MemoryUploader) Upload(buf vertex.Buffer) (Handle, error) {
	if err := CheckBuffer(buf); err != nil {
		return Handle{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.data[m.nextID] = buf.Bytes()
	return NewHandle(m.nextID, 0, buf), nil
}

// Release forgets the handle's data.
func (m *MemoryUploader) Release(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[h.ID]; !ok {
		return fmt.Errorf("%w: id %d", ErrReleased, h.ID)
	}
	delete(m.data, h.ID)
	delete(m.draws, h.ID)
	return nil
}

// Draw counts a draw of h.
func (m *MemoryUploader) Draw(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[h.ID]; !ok {
		return fmt.Errorf("%w: id %d", ErrReleased, h.ID)
	}
	m.draws[h.ID]++
	return nil
}

// Data returns the bytes stored for h, or nil if it was released.
func (m *MemoryUploader) Data(h Handle) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[h.ID]
}

// Draws returns how often h was drawn.
func (m *MemoryUploader) Draws(h Handle) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draws[h.ID]
}

// Live returns the number of handles not yet released.
func (m *MemoryUploader) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
