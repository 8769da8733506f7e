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

package command

import "errors"

var (
	// ErrInvalidCommand occurs when a decoded frame is not an Array, is
	// empty, its first element is not a BulkString, or the name it holds
	// does not match any known command.
	ErrInvalidCommand = errors.New("command: invalid command")
	// ErrInvalidArgument occurs when a command is recognized but carries
	// the wrong number of arguments or an argument of the wrong frame type.
	ErrInvalidArgument = errors.New("command: invalid argument")
	// ErrUtf8 occurs when a key or field slot is not valid UTF-8.
	ErrUtf8 = errors.New("command: invalid utf8")
)
