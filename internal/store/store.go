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

// Package store holds the in-memory key space the command layer operates
// on: a flat string->Frame table and a string->(string->Frame) hash table,
// both backed by cornelk/hashmap so concurrent connections never block each
// other on a shared mutex.
package store

import (
	"github.com/cornelk/hashmap"

	"respd/internal/resp"
)

// Store is the server's single key space, safe for concurrent use by every
// connection goroutine.
type Store struct {
	kv  hashmap.HashMap // string -> resp.Frame
	hkv hashmap.HashMap // string -> *hashmap.HashMap (string -> resp.Frame)
}

// New returns an empty Store ready for use.
func New() *Store {
	return &Store{}
}

// Get returns the value stored under key, or (_, false) if unset.
func (s *Store) Get(key string) (resp.Frame, bool) {
	v, ok := s.kv.Get(key)
	if !ok {
		return resp.Frame{}, false
	}
	return v.(resp.Frame), true
}

// Set stores value under key, overwriting whatever was there before.
func (s *Store) Set(key string, value resp.Frame) {
	s.kv.Set(key, value)
}

// HGet returns the value stored under field in the hash at key.
func (s *Store) HGet(key, field string) (resp.Frame, bool) {
	raw, ok := s.hkv.Get(key)
	if !ok {
		return resp.Frame{}, false
	}
	fields := raw.(*hashmap.HashMap)
	v, ok := fields.Get(field)
	if !ok {
		return resp.Frame{}, false
	}
	return v.(resp.Frame), true
}

// HSet stores value under field in the hash at key, creating the hash if
// this is its first field.
func (s *Store) HSet(key, field string, value resp.Frame) {
	fields := s.hashAt(key)
	fields.Set(field, value)
}

// HGetAll returns every field/value pair in the hash at key as a map, and
// whether the hash exists at all. The map carries no field order; the
// HGETALL command sorts the fields itself before replying.
func (s *Store) HGetAll(key string) (map[string]resp.Frame, bool) {
	raw, ok := s.hkv.Get(key)
	if !ok {
		return nil, false
	}
	fields := raw.(*hashmap.HashMap)

	out := make(map[string]resp.Frame, fields.Len())
	for kv := range fields.Iter() {
		out[kv.Key.(string)] = kv.Value.(resp.Frame)
	}
	return out, true
}

// hashAt returns the per-key field map for key, creating it on first use.
// GetOrInsert makes the creation race-safe: if two goroutines HSet the same
// new key concurrently, exactly one of their empty field maps wins and both
// goroutines proceed against it.
func (s *Store) hashAt(key string) *hashmap.HashMap {
	fresh := &hashmap.HashMap{}
	actual, _ := s.hkv.GetOrInsert(key, fresh)
	return actual.(*hashmap.HashMap)
}
