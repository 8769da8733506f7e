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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Decode_SimpleString(t *testing.T) {
	b := NewBuffer([]byte("+OK\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	text, _ := f.Text()
	assert.Equal(t, "OK", text)
	assert.True(t, b.Empty())
}

func Test_Decode_SimpleError(t *testing.T) {
	b := NewBuffer([]byte("-ERR bad\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	assert.Equal(t, KindSimpleError, f.Kind)
	text, _ := f.Text()
	assert.Equal(t, "ERR bad", text)
}

func Test_Decode_Integer(t *testing.T) {
	b := NewBuffer([]byte(":-17\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	n, _ := f.Int()
	assert.Equal(t, int64(-17), n)
}

func Test_Decode_BulkString(t *testing.T) {
	b := NewBuffer([]byte("$5\r\nhello\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	body, _ := f.Bytes()
	assert.Equal(t, []byte("hello"), body)
}

func Test_Decode_NullBulkString(t *testing.T) {
	b := NewBuffer([]byte("$-1\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	assert.Equal(t, KindNullBulkString, f.Kind)
}

func Test_Decode_NullArray(t *testing.T) {
	b := NewBuffer([]byte("*-1\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	assert.Equal(t, KindNullArray, f.Kind)
}

func Test_Decode_Array(t *testing.T) {
	b := NewBuffer([]byte("*2\r\n:1\r\n:2\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	items, _ := f.Array()
	assert.Len(t, items, 2)
	n0, _ := items[0].Int()
	assert.Equal(t, int64(1), n0)
}

func Test_Decode_Null(t *testing.T) {
	b := NewBuffer([]byte("_\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	assert.Equal(t, KindNull, f.Kind)
}

func Test_Decode_Boolean(t *testing.T) {
	b := NewBuffer([]byte("#t\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	v, _ := f.Bool()
	assert.True(t, v)

	b2 := NewBuffer([]byte("#f\r\n"))
	f2, err := Decode(b2)
	assert.Nil(t, err)
	v2, _ := f2.Bool()
	assert.False(t, v2)
}

func Test_Decode_Double(t *testing.T) {
	b := NewBuffer([]byte(",3.14\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	d, _ := f.Float()
	assert.Equal(t, 3.14, d)
}

func Test_Decode_Map(t *testing.T) {
	b := NewBuffer([]byte("%1\r\n+field\r\n:7\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	m, _ := f.Map()
	v, ok := m["field"]
	assert.True(t, ok)
	n, _ := v.Int()
	assert.Equal(t, int64(7), n)
}

func Test_Decode_Set(t *testing.T) {
	b := NewBuffer([]byte("~1\r\n+a\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	items, _ := f.Array()
	assert.Len(t, items, 1)
}

func Test_Decode_NotComplete_LeavesBufferUnchanged(t *testing.T) {
	partial := []byte("$5\r\nhel")
	b := NewBuffer(append([]byte(nil), partial...))
	_, err := Decode(b)
	assert.Equal(t, ErrNotComplete, err)
	assert.Equal(t, partial, b.leftBuf())

	b.Grow([]byte("lo\r\n"))
	f, err := Decode(b)
	assert.Nil(t, err)
	body, _ := f.Bytes()
	assert.Equal(t, []byte("hello"), body)
}

func Test_Decode_NotComplete_NestedArray(t *testing.T) {
	partial := []byte("*2\r\n:1\r\n")
	b := NewBuffer(append([]byte(nil), partial...))
	_, err := Decode(b)
	assert.Equal(t, ErrNotComplete, err)
	assert.Equal(t, partial, b.leftBuf())
}

func Test_Decode_InvalidFrameType(t *testing.T) {
	b := NewBuffer([]byte("@nope\r\n"))
	_, err := Decode(b)
	assert.Equal(t, ErrInvalidFrameType, err)
}

func Test_ExpectLength(t *testing.T) {
	n, err := ExpectLength([]byte("$5\r\nhello\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, 11, n)

	n, err = ExpectLength([]byte("*-1\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, 5, n)

	n, err = ExpectLength([]byte("_\r\n"))
	assert.Nil(t, err)
	assert.Equal(t, 3, n)

	_, err = ExpectLength([]byte("$5\r\nhel"))
	assert.Equal(t, ErrNotComplete, err)
}
