// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Split - partition the tree around one of its keys
//
// returns two trees: the first holds every key below the given key,
// the second every key above it; the key itself is dropped; an
// absent key is reported as ErrKeyNotFound with the tree unchanged
//
// a successful split consumes the receiver, which must not be used
// afterwards
//
// each ancestor on the root path contributes one join whose cost is
// bounded by a rank difference; the differences telescope so the
// whole split is amortised O(log n)
func (tree *Tree) Split(key int) (*Tree, *Tree, error) {
	p := tree.locate(key)
	if nil == p || p.key != key {
		return nil, nil, ErrKeyNotFound
	}

	small := New()
	big := New()
	if nil != p.left {
		small = newSubtree(p.left)
	}
	if nil != p.right {
		big = newSubtree(p.right)
	}

	for node := p; nil != node.up; node = node.up {
		parent := node.up
		if node == parent.right {
			// came up a right link: the parent and its left
			// subtree hold keys below the split point
			if nil != parent.left {
				small.Join(parent.key, parent.value, newSubtree(parent.left))
			} else {
				small.Insert(parent.key, parent.value)
			}
		} else {
			// came up a left link: the parent and its right
			// subtree hold keys above the split point
			if nil != parent.right {
				big.Join(parent.key, parent.value, newSubtree(parent.right))
			} else {
				big.Insert(parent.key, parent.value)
			}
		}
	}

	return small, big, nil
}
