// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Insert - insert a new node into the tree
//
// returns the number of rebalance operations performed, or
// ErrDuplicateKey if the key is already present; a failed insert
// leaves the tree unchanged
func (tree *Tree) Insert(key int, value string) (int, error) {
	if tree.IsEmpty() {
		tree.root = newNode(key, value, nil)
		tree.min = tree.root
		tree.max = tree.root
		return 0, nil
	}

	parent := tree.locate(key)
	if key == parent.key {
		return 0, ErrDuplicateKey
	}

	p := newNode(key, value, parent)
	if key < parent.key {
		parent.left = p
	} else {
		parent.right = p
	}
	if key < tree.min.key {
		tree.min = p
	}
	if key > tree.max.key {
		tree.max = p
	}

	return tree.insertRebalance(parent), nil
}

// insertRebalance - restore the AVL invariant after a subtree grew
//
// walks upward from the given node all the way to the root: once a
// node's height settles the remaining iterations only refresh the
// cached sizes, but a join can splice in a subtree that keeps
// growing slots further up, so the walk never stops early; returns
// the accumulated rebalance operation count
func (tree *Tree) insertRebalance(p *Node) int {
	cnt := 0
	for nil != p {
		bf := balanceFactor(p)
		p.setSize()
		if -2 < bf && bf < 2 {
			if p.height != computedHeight(p) {
				// this branch has grown
				p.setHeight()
				cnt += 1
			}
		} else if 2 == bf {
			switch balanceFactor(p.left) {
			case 0:
				p.left.height += 1
				cnt += tree.rotateRight(p)
				cnt += 1
			case 1:
				// single LL rotation
				cnt += tree.rotateRight(p)
				p.height -= 1
				cnt += 1
			case -1:
				// double LR rotation
				p1 := p.left
				p1.height -= 1
				p.height -= 1
				p1.right.height += 1
				cnt += 3
				cnt += tree.rotateLeft(p1)
				cnt += tree.rotateRight(p)
			}
		} else { // bf == -2
			switch balanceFactor(p.right) {
			case 0:
				p.right.height += 1
				cnt += tree.rotateLeft(p)
				cnt += 1
			case -1:
				// single RR rotation
				cnt += tree.rotateLeft(p)
				p.height -= 1
				cnt += 1
			case 1:
				// double RL rotation
				p1 := p.right
				p1.height -= 1
				p.height -= 1
				p1.left.height += 1
				cnt += 3
				cnt += tree.rotateRight(p1)
				cnt += tree.rotateLeft(p)
			}
		}
		p = p.up
	}
	return cnt
}
