// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// error instances
//
// a single instance of each error to allow easy comparison

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type NotFoundError GenericError
type EmptyError GenericError
type RangeError GenericError

// common errors - keep in alphabetic order
var (
	ErrDuplicateKey    = ExistsError("key already exists")
	ErrEmptyTree       = EmptyError("tree is empty")
	ErrKeyNotFound     = NotFoundError("key not found")
	ErrKeyRangeOverlap = RangeError("key ranges are not disjoint")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e EmptyError) Error() string    { return string(e) }
func (e RangeError) Error() string    { return string(e) }
