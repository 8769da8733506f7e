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

func Test_Buffer_ReadN(t *testing.T) {
	b := NewBuffer([]byte("hello world"))

	n, err := b.ReadN(5)
	assert.Nil(t, err)
	assert.Equal(t, []byte("hello"), n)
	assert.Equal(t, 11, b.leftSize())

	_, err = b.ReadN(100)
	assert.Equal(t, ErrNotComplete, err)
}

func Test_Buffer_DiscardAndCompact(t *testing.T) {
	b := NewBuffer([]byte("hello world"))
	b.Discard(6)
	assert.Equal(t, 5, b.leftSize())
	assert.Equal(t, []byte("world"), b.leftBuf())

	b.Compact()
	assert.Equal(t, 5, b.TotalSize())
	assert.Equal(t, []byte("world"), b.leftBuf())
}

func Test_Buffer_Grow(t *testing.T) {
	b := NewBuffer(nil)
	assert.True(t, b.Empty())

	b.Grow([]byte("abc"))
	assert.False(t, b.Empty())
	assert.Equal(t, 3, b.TotalSize())
}

func Test_findCRLF(t *testing.T) {
	data := []byte("$5\r\nhello\r\n")
	idx, ok := findCRLF(data, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}
