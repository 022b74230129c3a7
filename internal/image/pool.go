package image

import "sync"

// Pool is a thread-safe pool for reusing RGBA pixel buffers.
//
// Pool groups buffers by their dimensions, so each channel layer of a render
// can reuse the memory of a previous render of the same size.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][][]byte
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically sized buffers.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed width*height*4 byte buffer, reused if one is available.
// It returns nil for non-positive dimensions.
func (p *Pool) Get(width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, width*height*4)
}

// Put returns a buffer to the pool for reuse.
// Buffers whose length does not match width*height*4 are discarded, as are
// buffers that would overflow a full bucket.
func (p *Pool) Put(buf []byte, width, height int) {
	if buf == nil || width <= 0 || height <= 0 || len(buf) != width*height*4 {
		return
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently held for the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}
