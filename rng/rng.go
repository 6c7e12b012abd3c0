// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides the random-number stream shared by the
// samplers.
//
// A Stream is owned by the caller. Draws are made through a Session,
// obtained with Begin and released with End. While a Session is open
// the Stream is held exclusively, so the draws of one bracket are never
// interleaved with draws from another, and the order of draws inside a
// bracket fully determines the results.
//
//	s := rng.NewPCG(1)
//	sess := s.Begin()
//	x := stats.Rexp(2, sess)
//	sess.End()
package rng // import "github.com/nimble-go/nimdist/rng"

import (
	"encoding"
	"errors"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// ErrNotMarshalable is returned when the underlying source cannot
// save or restore its state.
var ErrNotMarshalable = errors.New("rng: source state cannot be marshaled")

// A Stream is a lockable random source.
type Stream struct {
	mu  sync.Mutex
	src rand.Source
}

// New returns a Stream drawing from src. The Stream takes ownership of
// src; it must not be used directly afterwards.
func New(src rand.Source) *Stream {
	return &Stream{src: src}
}

// NewPCG returns a Stream backed by a PCG source with the given seed.
func NewPCG(seed uint64) *Stream {
	return New(rand.NewSource(seed))
}

// NewMT19937 returns a Stream backed by a 32-bit Mersenne Twister with
// the given seed.
func NewMT19937(seed uint64) *Stream {
	src := prng.NewMT19937()
	src.Seed(seed)
	return New(src)
}

// Begin acquires the stream and returns the Session through which
// draws are made. It blocks while another Session is open.
func (s *Stream) Begin() *Session {
	s.mu.Lock()
	return &Session{s: s}
}

// Do runs fn inside a Begin/End bracket. The bracket is closed even if
// fn panics.
func (s *Stream) Do(fn func(src rand.Source)) {
	sess := s.Begin()
	defer sess.End()
	fn(sess)
}

// Seed reseeds the stream.
func (s *Stream) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// MarshalBinary returns the state of the stream, if the underlying
// source supports it.
func (s *Stream) MarshalBinary() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.src.(encoding.BinaryMarshaler)
	if !ok {
		return nil, ErrNotMarshalable
	}
	return m.MarshalBinary()
}

// UnmarshalBinary restores a state previously returned by
// MarshalBinary.
func (s *Stream) UnmarshalBinary(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.src.(encoding.BinaryUnmarshaler)
	if !ok {
		return ErrNotMarshalable
	}
	return u.UnmarshalBinary(data)
}

// A Session is an open bracket on a Stream. It implements
// rand.Source and is passed to the samplers. A Session must not be
// used after End.
type Session struct {
	s     *Stream
	n     uint64
	ended bool
}

var _ rand.Source = (*Session)(nil)

// Uint64 draws the next value from the stream.
func (sess *Session) Uint64() uint64 {
	if sess.ended {
		panic("rng: draw outside Begin/End")
	}
	sess.n++
	return sess.s.src.Uint64()
}

// Seed reseeds the underlying stream.
func (sess *Session) Seed(seed uint64) {
	if sess.ended {
		panic("rng: seed outside Begin/End")
	}
	sess.s.src.Seed(seed)
}

// Draws returns the number of raw 64-bit values drawn in this
// Session.
func (sess *Session) Draws() uint64 {
	return sess.n
}

// End releases the stream. Calling End more than once is a no-op.
func (sess *Session) End() {
	if sess.ended {
		return
	}
	sess.ended = true
	sess.s.mu.Unlock()
}
