// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// rotation primitives
//
// each rotation re-links the promoted child into the rotated node's
// former parent slot (or makes it the new root), re-parents the
// transferred grandchild subtree and recomputes the cached sizes of
// the two nodes involved; heights are the caller's responsibility
// since a rotation runs mid-rebalance with the height deltas already
// applied; each call reports a cost of one rebalance operation

// rotateRight - rotate the edge between a node and its left child
func (tree *Tree) rotateRight(p *Node) int {
	p1 := p.left

	p1.up = p.up
	if nil == p.up {
		tree.root = p1
	} else if p == p.up.left {
		p.up.left = p1
	} else {
		p.up.right = p1
	}

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p.up = p1

	p.setSize()
	p1.setSize()

	return 1
}

// rotateLeft - rotate the edge between a node and its right child
func (tree *Tree) rotateLeft(p *Node) int {
	p1 := p.right

	p1.up = p.up
	if nil == p.up {
		tree.root = p1
	} else if p == p.up.left {
		p.up.left = p1
	} else {
		p.up.right = p1
	}

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p.up = p1

	p.setSize()
	p1.setSize()

	return 1
}
