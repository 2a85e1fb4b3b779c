package codec

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// DecompressPool manages reusable zstd decoders to reduce allocation overhead.
type DecompressPool struct {
	pool             *sync.Pool
	maxDecoderMemory uint64
}

// NewDecompressPool creates a new pool for zstd decoders.
// If maxMemory is 0, no memory limit is applied to decoders.
func NewDecompressPool(maxMemory uint64) *DecompressPool {
	p := &DecompressPool{maxDecoderMemory: maxMemory}
	p.pool = &sync.Pool{
		New: func() any {
			dec, err := p.newDecoder(nil)
			if err != nil {
				return nil
			}
			return dec
		},
	}
	return p
}

// Get returns a decoder configured to read from r.
// The caller must call the returned release function when done.
// If an error is returned, no release function needs to be called.
func (p *DecompressPool) Get(r io.Reader) (*zstd.Decoder, func(), error) {
	if p == nil || p.pool == nil {
		dec, err := p.newDecoder(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	}

	dec, ok := p.pool.Get().(*zstd.Decoder)
	if !ok || dec == nil {
		// Pool's New function failed, try directly
		newDec, err := p.newDecoder(r)
		if err != nil {
			return nil, nil, err
		}
		return newDec, newDec.Close, nil
	}

	if err := dec.Reset(r); err != nil {
		dec.Close()
		newDec, err := p.newDecoder(r)
		if err != nil {
			return nil, nil, err
		}
		return newDec, newDec.Close, nil
	}

	return dec, func() {
		_ = dec.Reset(nil) //nolint:errcheck // clearing state before pool return
		p.pool.Put(dec)
	}, nil
}

// newDecoder creates a single-goroutine zstd decoder with the configured memory limit.
func (p *DecompressPool) newDecoder(r io.Reader) (*zstd.Decoder, error) {
	opts := []zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	}
	if p != nil && p.maxDecoderMemory != 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(p.maxDecoderMemory))
	}
	return zstd.NewReader(r, opts...)
}
