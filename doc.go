// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avltree - an AVL balanced tree over distinct integer keys
// with string values, with the addition of parent pointers to allow
// iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height and size of its subtree, which allows
// the tree to support two rank based structural operations in
// addition to the usual search, insert and delete: Split partitions
// a tree around one of its keys into two trees, and Join merges two
// trees whose key ranges are separated by a new key.  Insert and
// Delete report the number of rebalance operations performed, where
// a rotation or a height promotion/demotion counts as one and a
// double rotation counts as two.
//
// Keys are unique: inserting a key that is already present is
// rejected and leaves the tree unchanged.
package avltree
