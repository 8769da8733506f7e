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

import "errors"

var (
	// ErrNotComplete occurs when there is an incomplete frame in the buffer;
	// the caller should read more bytes and retry without discarding anything.
	ErrNotComplete = errors.New("resp: frame is not complete")
	// ErrInvalidFrameType occurs when the leading byte is not a known RESP prefix.
	ErrInvalidFrameType = errors.New("resp: invalid frame type")
	// ErrInvalidFrame occurs when a frame body is syntactically malformed.
	ErrInvalidFrame = errors.New("resp: invalid frame")
	// ErrInvalidFrameLength occurs when a length header is negative (other than
	// the null sentinel) or does not match the content that follows.
	ErrInvalidFrameLength = errors.New("resp: invalid frame length")
	// ErrParseInt occurs when an integer frame's digits fail to parse.
	ErrParseInt = errors.New("resp: parse int error")
	// ErrParseFloat occurs when a double frame's digits fail to parse.
	ErrParseFloat = errors.New("resp: parse float error")
	// ErrUtf8 occurs when a text field is not valid UTF-8.
	ErrUtf8 = errors.New("resp: invalid utf8")
)
