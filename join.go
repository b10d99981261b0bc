// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Join - merge this tree, a separator key/value and another tree
//
// precondition: the key ranges of the two trees are disjoint and the
// separator key lies strictly between them; either tree may be
// empty; a violation is reported as ErrKeyRangeOverlap with neither
// tree modified
//
// the other tree is consumed by the merge and must not be used
// afterwards
//
// returns the rank-difference cost bound of the merge:
// |height(this) - height(other)| + 1, with an empty tree counted as
// height -1 and the one-sided cases reported as height + 2
func (tree *Tree) Join(key int, value string, other *Tree) (int, error) {
	if err := tree.joinable(key, other); nil != err {
		return 0, err
	}

	if nil == other || other.IsEmpty() {
		if tree.IsEmpty() {
			// both trees empty: rank difference |(-1)-(-1)| + 1
			tree.Insert(key, value)
			return 1, nil
		}
		cost := tree.root.height + 2
		tree.Insert(key, value)
		return cost, nil
	}
	if tree.IsEmpty() {
		cost := other.root.height + 2
		tree.root = other.root
		tree.min = other.min
		tree.max = other.max
		tree.Insert(key, value)
		return cost, nil
	}

	cost := tree.root.height - other.root.height
	if cost < 0 {
		cost = -cost
	}
	cost += 1

	x := newNode(key, value, nil)
	if tree.max.key < key { // this < x < other
		tree.max = other.max
		switch {
		case cost-1 <= 1:
			// roots differ in height by 0 or 1: x becomes the root
			tree.root.up = x
			x.left = tree.root
			other.root.up = x
			x.right = other.root
		case tree.root.height < other.root.height:
			// descend the left spine of the taller right-hand tree
			p := other.root
			for nil != p.left && p.height > tree.root.height {
				p = p.left
			}
			parent := p.up
			tree.root.up = x
			x.left = tree.root
			parent.left = x
			x.up = parent
			p.up = x
			x.right = p
		default:
			// descend the right spine of the taller left-hand tree
			p := tree.root
			for nil != p.right && p.height > other.root.height {
				p = p.right
			}
			parent := p.up
			other.root.up = x
			x.right = other.root
			parent.right = x
			x.up = parent
			p.up = x
			x.left = p
		}
	} else { // other < x < this
		tree.min = other.min
		switch {
		case cost-1 <= 1:
			other.root.up = x
			x.left = other.root
			tree.root.up = x
			x.right = tree.root
		case tree.root.height < other.root.height:
			p := other.root
			for nil != p.right && p.height > tree.root.height {
				p = p.right
			}
			parent := p.up
			tree.root.up = x
			x.right = tree.root
			parent.right = x
			x.up = parent
			p.up = x
			x.left = p
		default:
			p := tree.root
			for nil != p.left && p.height > other.root.height {
				p = p.left
			}
			parent := p.up
			other.root.up = x
			x.left = other.root
			parent.left = x
			x.up = parent
			p.up = x
			x.right = p
		}
	}

	// the walk-to-root below runs before rebalancing; any rotation at
	// the old root during the rebalance updates tree.root itself
	r := x
	for nil != r.up {
		r = r.up
	}
	tree.root = r

	x.setHeight()
	x.setSize()
	tree.insertRebalance(x.up)

	return cost, nil
}

// joinable - precondition check, performed before any mutation
//
// with both trees populated this is O(1) against the cached
// extremes; a degenerate merge is a plain insert, so there the only
// possible violation is a separator key that already exists
func (tree *Tree) joinable(key int, other *Tree) error {
	if nil == other || other.IsEmpty() || tree.IsEmpty() {
		t := tree
		if t.IsEmpty() {
			t = other
		}
		if nil == t || t.IsEmpty() {
			return nil
		}
		if p := t.locate(key); p.key == key {
			return ErrKeyRangeOverlap
		}
		return nil
	}
	if tree.max.key < key && key < other.min.key {
		return nil
	}
	if other.max.key < key && key < tree.min.key {
		return nil
	}
	return ErrKeyRangeOverlap
}
