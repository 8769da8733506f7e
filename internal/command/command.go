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

// Package command turns decoded RESP frames into typed commands and runs
// them against the backend store.
package command

import (
	"sort"
	"unicode/utf8"

	"respd/internal/resp"
	"respd/internal/store"
)

// Kind names one of the five commands the server understands.
type Kind int

const (
	Unknown Kind = iota
	Get
	Set
	HGet
	HSet
	HGetAll
)

func (k Kind) String() string {
	switch k {
	case Get:
		return "get"
	case Set:
		return "set"
	case HGet:
		return "hget"
	case HSet:
		return "hset"
	case HGetAll:
		return "hgetall"
	default:
		return "unknown"
	}
}

// arityByKind is the number of arguments expected after the command name.
var arityByKind = map[Kind]int{
	Get:     1,
	Set:     2,
	HGet:    2,
	HSet:    3,
	HGetAll: 1,
}

var kindByName = map[string]Kind{
	"get":     Get,
	"set":     Set,
	"hget":    HGet,
	"hset":    HSet,
	"hgetall": HGetAll,
}

// okFrame is the fixed SimpleString response every successful write
// command returns, cached once rather than allocated per call.
var okFrame = resp.NewSimpleString("OK")

// Command is a fully parsed, validated request ready for Execute.
type Command struct {
	Kind  Kind
	Key   string
	Field string
	Value resp.Frame
}

// Parse builds a Command from a top-level decoded Frame. f must be an
// Array whose first element is a BulkString naming a known command,
// matched case-insensitively; every other frame shape yields
// ErrInvalidCommand. Wrong arity or argument types yield ErrInvalidArgument.
func Parse(f resp.Frame) (Command, error) {
	items, ok := f.Array()
	if !ok || len(items) == 0 {
		return Command{}, ErrInvalidCommand
	}

	nameBytes, ok := items[0].Bytes()
	if !ok {
		return Command{}, ErrInvalidCommand
	}
	name := make([]byte, len(nameBytes))
	copy(name, nameBytes)
	toLower(name)

	kind, known := kindByName[string(name)]
	if !known {
		return Command{}, ErrInvalidCommand
	}

	args := items[1:]
	if len(args) != arityByKind[kind] {
		return Command{}, ErrInvalidArgument
	}

	switch kind {
	case Get, HGetAll:
		key, err := bulkText(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Key: key}, nil
	case Set:
		key, err := bulkText(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Set, Key: key, Value: args[1]}, nil
	case HGet:
		key, err := bulkText(args[0])
		if err != nil {
			return Command{}, err
		}
		field, err := bulkText(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: HGet, Key: key, Field: field}, nil
	case HSet:
		key, err := bulkText(args[0])
		if err != nil {
			return Command{}, err
		}
		field, err := bulkText(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: HSet, Key: key, Field: field, Value: args[2]}, nil
	default:
		return Command{}, ErrInvalidCommand
	}
}

// bulkText extracts and UTF-8-validates a BulkString argument used as a
// key or field. Values passed through to Set/HSet are not decoded here;
// they ride along as opaque frames.
func bulkText(f resp.Frame) (string, error) {
	b, ok := f.Bytes()
	if !ok {
		return "", ErrInvalidArgument
	}
	if !utf8.Valid(b) {
		return "", ErrUtf8
	}
	return string(b), nil
}

// Execute runs c against s and returns the response frame. It never
// suspends indefinitely and never panics for a Command built by Parse.
func (c Command) Execute(s *store.Store) resp.Frame {
	switch c.Kind {
	case Get:
		v, found := s.Get(c.Key)
		if !found {
			return resp.Null()
		}
		return v
	case Set:
		s.Set(c.Key, c.Value)
		return okFrame
	case HGet:
		v, found := s.HGet(c.Key, c.Field)
		if !found {
			return resp.Null()
		}
		return v
	case HSet:
		s.HSet(c.Key, c.Field, c.Value)
		return okFrame
	case HGetAll:
		return execHGetAll(s, c.Key)
	default:
		return resp.NewSimpleError("ERR unknown command")
	}
}

func execHGetAll(s *store.Store, key string) resp.Frame {
	fields, found := s.HGetAll(key)
	if !found || len(fields) == 0 {
		return resp.NewArray(nil)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]resp.Frame, 0, len(fields)*2)
	for _, name := range names {
		items = append(items, resp.NewBulkStringFromString(name), fields[name])
	}
	return resp.NewArray(items)
}

// toLower is the in-place XOR trick: cheaper than strings.ToLower because
// it avoids an extra allocation on the hot dispatch path.
func toLower(bs []byte) {
	for i := 0; i < len(bs); i++ {
		if bs[i] >= 'A' && bs[i] <= 'Z' {
			bs[i] = bs[i] ^ 0x20
		}
	}
}
