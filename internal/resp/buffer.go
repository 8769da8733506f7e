// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resp

import "bytes"

var crlf = []byte{'\r', '\n'}

// Buffer accumulates bytes read off a connection and hands out frames to
// Decode as they become fully available. Unlike a single-shot event-loop
// peek buffer, Buffer is grown incrementally across reads (see Grow) and
// owned by exactly one connection goroutine, so it needs no locking of
// its own.
type Buffer struct {
	buf []byte
	r   int // index of the first unconsumed byte
}

// NewBuffer wraps bs as the initial contents of a fresh Buffer. A nil or
// empty bs is a valid empty buffer.
func NewBuffer(bs []byte) *Buffer {
	return &Buffer{buf: bs}
}

// Empty reports whether there are no unconsumed bytes left.
func (b *Buffer) Empty() bool {
	return b.leftSize() < 1
}

// TotalSize is the number of bytes currently buffered (consumed + unconsumed).
func (b *Buffer) TotalSize() int {
	return len(b.buf)
}

// Grow appends freshly read bytes to the buffer.
func (b *Buffer) Grow(bs []byte) {
	b.buf = append(b.buf, bs...)
}

// Compact drops the already-consumed prefix so the buffer doesn't grow
// without bound across a long-lived pipelined connection.
func (b *Buffer) Compact() {
	if b.r == 0 {
		return
	}
	n := copy(b.buf, b.buf[b.r:])
	b.buf = b.buf[:n]
	b.r = 0
}

func (b *Buffer) leftSize() int {
	return len(b.buf) - b.r
}

// leftBuf is the unconsumed tail of the buffer; Decode reads from here.
func (b *Buffer) leftBuf() []byte {
	return b.buf[b.r:]
}

// Discard advances the read cursor past n already-validated bytes.
func (b *Buffer) Discard(n int) {
	b.r += n
}

// ReadN returns the next n unconsumed bytes without advancing the cursor.
func (b *Buffer) ReadN(n int) ([]byte, error) {
	if n > b.leftSize() {
		return nil, ErrNotComplete
	}
	return b.buf[b.r : b.r+n], nil
}

// findCRLF returns the index (relative to data) of the nth CRLF occurrence,
// searching forward starting at offset 1 (offset 0 is always a frame prefix
// byte and can never itself start a CRLF pair worth counting).
func findCRLF(data []byte, nth int) (int, bool) {
	count := 0
	start := 1
	for {
		idx := bytes.IndexByte(data[start:], '\r')
		if idx == -1 {
			return 0, false
		}
		pos := start + idx
		if pos+1 >= len(data) {
			return 0, false
		}
		if data[pos+1] == '\n' {
			count++
			if count == nth {
				return pos, true
			}
		}
		start = pos + 1
	}
}
