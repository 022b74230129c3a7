package halftone

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gogpu/halftone/internal/cache"
)

// Processor runs Process with a fixed seed and remembers recent results, so
// revisiting a parameter set (a slider moved back, an undo in the host)
// returns the earlier bytes without rendering again.
//
// Thread safety: All methods are safe for concurrent use.
type Processor struct {
	seed  uint64
	ropts []RenderOption
	cache *cache.Cache
}

// CacheStats reports the Processor's result cache counters.
type CacheStats struct {
	Entries  int
	Bytes    int
	MaxBytes int
	Hits     uint64
	Misses   uint64
}

// NewProcessor creates a Processor whose renders all use seed. maxCacheBytes
// bounds the memory held by cached results; zero or less picks a default.
// ropts are applied to every render before the seed.
func NewProcessor(seed uint64, maxCacheBytes int, ropts ...RenderOption) *Processor {
	return &Processor{
		seed:  seed,
		ropts: append(append([]RenderOption(nil), ropts...), WithSeed(seed)),
		cache: cache.New(maxCacheBytes),
	}
}

// Process is like the package-level Process, with caching. Errors are not
// cached.
func (p *Processor) Process(data []byte, width, height int, opts Options) ([]byte, error) {
	key := p.key(data, width, height, opts)
	if out, ok := p.cache.Get(key); ok {
		Logger().Debug("halftone: cache hit", "key", key)
		return out, nil
	}
	out, err := Process(data, width, height, opts, p.ropts...)
	if err != nil {
		return nil, err
	}
	p.cache.Set(key, out)
	return out, nil
}

// Reset drops every cached result, for example after the host document
// changed under the cached inputs. Counters are kept.
func (p *Processor) Reset() {
	p.cache.Clear()
}

// Stats returns the cache counters.
func (p *Processor) Stats() CacheStats {
	st := p.cache.Stats()
	return CacheStats{
		Entries:  st.Len,
		Bytes:    st.Bytes,
		MaxBytes: st.MaxBytes,
		Hits:     st.Hits,
		Misses:   st.Misses,
	}
}

// key hashes everything that determines the output bytes.
func (p *Processor) key(data []byte, width, height int, opts Options) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data) // fnv.Write never returns an error
	var buf [8 * 7]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(width))
	binary.LittleEndian.PutUint64(buf[8:], uint64(height))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(opts.Size))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(opts.Angle))
	binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(opts.Saturation))
	binary.LittleEndian.PutUint64(buf[40:], math.Float64bits(opts.Contrast))
	binary.LittleEndian.PutUint64(buf[48:], p.seed)
	_, _ = h.Write(buf[:])
	return h.Sum64()
}
