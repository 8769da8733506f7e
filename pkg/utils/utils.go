// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"): you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package utils

import (
	"reflect"
	"unsafe"
)

// S2B reinterprets s as a byte slice without copying. The returned slice
// must not be mutated; doing so corrupts the Go string it aliases.
func S2B(s string) []byte {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	bh := reflect.SliceHeader{Data: sh.Data, Len: sh.Len, Cap: sh.Len}
	return *(*[]byte)(unsafe.Pointer(&bh))
}

// B2S reinterprets b as a string without copying.
func B2S(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// FormatRESPMessage renders raw RESP wire bytes as a single printable line
// for log output, replacing CR/LF with '.' so a frame's encoding stays on
// one line.
func FormatRESPMessage(wire []byte) string {
	bs := make([]byte, len(wire))
	for i, v := range wire {
		if v == '\r' || v == '\n' {
			bs[i] = '.'
			continue
		}
		bs[i] = v
	}
	return B2S(bs)
}
