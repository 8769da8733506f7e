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

func Test_Encode_SimpleString(t *testing.T) {
	assert.Equal(t, []byte("+OK\r\n"), Encode(NewSimpleString("OK")))
}

func Test_Encode_SimpleError(t *testing.T) {
	assert.Equal(t, []byte("-ERR bad\r\n"), Encode(NewSimpleError("ERR bad")))
}

func Test_Encode_Integer(t *testing.T) {
	assert.Equal(t, []byte(":+42\r\n"), Encode(NewInteger(42)))
	assert.Equal(t, []byte(":-7\r\n"), Encode(NewInteger(-7)))
}

func Test_Encode_BulkString(t *testing.T) {
	assert.Equal(t, []byte("$5\r\nhello\r\n"), Encode(NewBulkStringFromString("hello")))
}

func Test_Encode_NullForms(t *testing.T) {
	assert.Equal(t, []byte("$-1\r\n"), Encode(NullBulkString()))
	assert.Equal(t, []byte("*-1\r\n"), Encode(NullArray()))
	assert.Equal(t, []byte("_\r\n"), Encode(Null()))
}

func Test_Encode_Array(t *testing.T) {
	f := NewArray([]Frame{NewInteger(1), NewInteger(2)})
	assert.Equal(t, []byte("*2\r\n:+1\r\n:+2\r\n"), Encode(f))
}

func Test_Encode_Boolean(t *testing.T) {
	assert.Equal(t, []byte("#t\r\n"), Encode(NewBoolean(true)))
	assert.Equal(t, []byte("#f\r\n"), Encode(NewBoolean(false)))
}

func Test_Encode_Double_Fixed(t *testing.T) {
	assert.Equal(t, []byte(",+3.14\r\n"), Encode(NewDouble(3.14)))
	assert.Equal(t, []byte(",-3.14\r\n"), Encode(NewDouble(-3.14)))
}

func Test_Encode_Double_Scientific(t *testing.T) {
	out := Encode(NewDouble(1e20))
	assert.Equal(t, byte(','), out[0])
	assert.Contains(t, string(out), "e+")
}

func Test_Encode_Map_SortsKeys(t *testing.T) {
	f := NewMap(map[string]Frame{
		"z": NewInteger(1),
		"a": NewInteger(2),
	})
	assert.Equal(t, []byte("%2\r\n+a\r\n:+2\r\n+z\r\n:+1\r\n"), Encode(f))
}

func Test_Encode_Set(t *testing.T) {
	f := NewSet([]Frame{NewSimpleString("a")})
	assert.Equal(t, []byte("~1\r\n+a\r\n"), Encode(f))
}

func Test_RoundTrip(t *testing.T) {
	frames := []Frame{
		NewSimpleString("OK"),
		NewSimpleError("ERR bad"),
		NewInteger(-123),
		NewBulkStringFromString("payload"),
		NullBulkString(),
		NewArray([]Frame{NewInteger(1), NewBulkStringFromString("x")}),
		NullArray(),
		Null(),
		NewBoolean(true),
		NewBoolean(false),
		NewDouble(2.5),
		NewMap(map[string]Frame{"a": NewInteger(1)}),
		NewSet([]Frame{NewInteger(1), NewInteger(2)}),
	}

	for _, f := range frames {
		wire := Encode(f)
		b := NewBuffer(wire)
		got, err := Decode(b)
		assert.Nil(t, err)
		assert.True(t, f.Equal(got), "round trip mismatch for %s", f.Kind)
		assert.True(t, b.Empty())
	}
}
