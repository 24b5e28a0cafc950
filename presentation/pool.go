package presentation

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// runeBuffer holds the scratch space of a single call to Shaper.Fix.
type runeBuffer struct {
	in     []rune
	shaped []rune
	line   []rune
	types  []joiningType
}

// Buffers are short-lived objects, needed for every call to Fix. As a Fix is
// issued for every character during a retry, we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &runeBuffer{
				in:     make([]rune, 0, 64),
				shaped: make([]rune, 0, 64),
			}, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

func borrowBuffer() *runeBuffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		tracer().Debugf("rune buffer pool: %v", err)
		return &runeBuffer{}
	}
	return o.(*runeBuffer)
}

// release clears the buffer and puts it back into the pool.
func (buf *runeBuffer) release() {
	buf.in = buf.in[:0]
	buf.shaped = buf.shaped[:0]
	buf.line = buf.line[:0]
	buf.types = buf.types[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
