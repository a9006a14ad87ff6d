// ABOUTME: Pooled append-only byte buffer holding one frame of terminal output.
// ABOUTME: Flushed to the device in a single Write call; recycled via sync.Pool.

package tui

import (
	"fmt"
	"io"
	"sync"
)

var framePool = sync.Pool{
	New: func() any {
		return &FrameBuffer{
			buf: make([]byte, 0, 4096),
		}
	},
}

// AcquireFrame gets a FrameBuffer from the pool.
func AcquireFrame() *FrameBuffer {
	buf := framePool.Get().(*FrameBuffer)
	buf.Reset()
	return buf
}

// ReleaseFrame returns a FrameBuffer to the pool.
func ReleaseFrame(buf *FrameBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	framePool.Put(buf)
}

// FrameBuffer accumulates the bytes of one frame in append order. It is
// single-use per frame: fill it, flush it once, release it.
type FrameBuffer struct {
	buf []byte
}

// Append copies p to the end of the buffer.
func (f *FrameBuffer) Append(p []byte) {
	f.buf = append(f.buf, p...)
}

// AppendString copies s to the end of the buffer.
func (f *FrameBuffer) AppendString(s string) {
	f.buf = append(f.buf, s...)
}

// Write implements io.Writer so formatted output can target the buffer.
// It never fails.
func (f *FrameBuffer) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// Len returns the number of accumulated bytes.
func (f *FrameBuffer) Len() int {
	return len(f.buf)
}

// Bytes returns the accumulated frame contents.
func (f *FrameBuffer) Bytes() []byte {
	return f.buf
}

// Reset clears the buffer for reuse without deallocating.
func (f *FrameBuffer) Reset() {
	f.buf = f.buf[:0]
}

// Flush writes the entire accumulated frame to w in exactly one Write
// call, then resets the buffer. Partial frames are never flushed, so the
// device sees each frame as an atomic replacement.
func (f *FrameBuffer) Flush(w io.Writer) error {
	if len(f.buf) == 0 {
		return nil
	}
	if _, err := w.Write(f.buf); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	f.Reset()
	return nil
}
