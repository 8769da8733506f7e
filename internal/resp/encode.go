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

import (
	"math"
	"sort"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

var encodePool bytebufferpool.Pool

// Encode turns a Frame into its wire bytes. It never fails. Every frame is
// built into a buffer taken from a bytebufferpool.Pool, with no fixed size
// hint of its own (the same pooling
// fabric the codec's domain stack already pulls in for hot-path byte
// buffers) and copied out once so the pool entry can be reused.
func Encode(f Frame) []byte {
	buf := encodePool.Get()
	defer func() {
		buf.Reset()
		encodePool.Put(buf)
	}()

	encodeInto(buf, f)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func encodeInto(buf *bytebufferpool.ByteBuffer, f Frame) {
	switch f.Kind {
	case KindSimpleString:
		_ = buf.WriteByte('+')
		_, _ = buf.WriteString(f.text)
		_, _ = buf.Write(crlf)
	case KindSimpleError:
		_ = buf.WriteByte('-')
		_, _ = buf.WriteString(f.text)
		_, _ = buf.Write(crlf)
	case KindInteger:
		_ = buf.WriteByte(':')
		if f.i >= 0 {
			_ = buf.WriteByte('+')
		}
		_, _ = buf.WriteString(strconv.FormatInt(f.i, 10))
		_, _ = buf.Write(crlf)
	case KindBulkString:
		_ = buf.WriteByte('$')
		_, _ = buf.WriteString(strconv.Itoa(len(f.bulk)))
		_, _ = buf.Write(crlf)
		_, _ = buf.Write(f.bulk)
		_, _ = buf.Write(crlf)
	case KindNullBulkString:
		_, _ = buf.WriteString("$-1\r\n")
	case KindArray:
		_ = buf.WriteByte('*')
		_, _ = buf.WriteString(strconv.Itoa(len(f.items)))
		_, _ = buf.Write(crlf)
		for _, item := range f.items {
			encodeInto(buf, item)
		}
	case KindNullArray:
		_, _ = buf.WriteString("*-1\r\n")
	case KindNull:
		_, _ = buf.WriteString("_\r\n")
	case KindBoolean:
		if f.b {
			_, _ = buf.WriteString("#t\r\n")
		} else {
			_, _ = buf.WriteString("#f\r\n")
		}
	case KindDouble:
		_, _ = buf.WriteString(encodeDouble(f.d))
	case KindMap:
		_ = buf.WriteByte('%')
		_, _ = buf.WriteString(strconv.Itoa(len(f.m)))
		_, _ = buf.Write(crlf)
		for _, key := range sortedKeys(f.m) {
			encodeInto(buf, NewSimpleString(key))
			encodeInto(buf, f.m[key])
		}
	case KindSet:
		_ = buf.WriteByte('~')
		_, _ = buf.WriteString(strconv.Itoa(len(f.items)))
		_, _ = buf.Write(crlf)
		for _, item := range f.items {
			encodeInto(buf, item)
		}
	}
}

func sortedKeys(m map[string]Frame) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encodeDouble renders a Double frame's wire grammar: scientific notation
// with a signed mantissa when the magnitude is above 1e8 or is nonzero and
// below 1e-8, otherwise fixed notation with a leading '+' when non-negative.
func encodeDouble(d float64) string {
	abs := math.Abs(d)
	var body string
	if abs > 1e8 || (d != 0 && abs < 1e-8) {
		body = strconv.FormatFloat(d, 'e', -1, 64)
		if d >= 0 {
			body = "+" + body
		}
	} else {
		body = strconv.FormatFloat(d, 'f', -1, 64)
		if d >= 0 {
			body = "+" + body
		}
	}
	return "," + body + "\r\n"
}
