// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Delete - removes a specific item from the tree
//
// returns the number of rebalance operations performed, or
// ErrKeyNotFound if the key is absent; a failed delete leaves the
// tree unchanged
func (tree *Tree) Delete(key int) (int, error) {
	p := tree.locate(key)
	if nil == p || p.key != key {
		return 0, ErrKeyNotFound
	}

	// repair the cached extremes before unlinking
	if p == tree.min {
		tree.min = p.Next()
	}
	if p == tree.max {
		tree.max = p.Prev()
	}

	if nil == p.left && nil == p.right { // leaf
		if nil == p.up { // the tree has only the root
			tree.root = nil
		} else if p == p.up.left {
			p.up.left = nil
		} else {
			p.up.right = nil
		}
		return tree.deleteRebalance(p.up), nil
	}

	if nil == p.left { // only a right child
		tree.replace(p, p.right)
		return tree.deleteRebalance(p.up), nil
	}
	if nil == p.right { // only a left child
		tree.replace(p, p.left)
		return tree.deleteRebalance(p.up), nil
	}

	// two children: splice the in-order successor into p's position;
	// the successor is the minimum of the right subtree so it never
	// has a left child
	successor := p.Next()
	successorParent := successor.up
	tree.replace(successor, successor.right)

	successor.left = p.left
	p.left.up = successor
	successor.right = p.right
	if nil != p.right {
		p.right.up = successor
	}

	if nil == p.up { // p is the root
		tree.root = successor
		successor.up = nil
	} else {
		if p == p.up.left {
			p.up.left = successor
		} else {
			p.up.right = successor
		}
		successor.up = p.up
	}
	successor.height = p.height

	// rebalance from the position that lost a node
	if successorParent == p {
		return tree.deleteRebalance(successor), nil
	}
	return tree.deleteRebalance(successorParent), nil
}

// replace - splice a subtree into another node's position
//
// updates the former parent's child link (or the root) and the
// spliced subtree's parent pointer; does not touch child links
func (tree *Tree) replace(prev *Node, updated *Node) {
	if nil == prev.up {
		tree.root = updated
	} else if prev == prev.up.left {
		prev.up.left = updated
	} else {
		prev.up.right = updated
	}
	if nil != updated {
		updated.up = prev.up
	}
}

// deleteRebalance - restore the AVL invariant after a subtree shrank
//
// mirrors insertRebalance but demotes heights, and unlike insertion
// the rebalancing can require rotations at more than one ancestor;
// the walk runs to the root, refreshing the cached sizes of the
// ancestors whose heights are already settled
func (tree *Tree) deleteRebalance(p *Node) int {
	cnt := 0
	for nil != p {
		bf := balanceFactor(p)
		p.setSize()
		if -2 < bf && bf < 2 {
			if p.height != computedHeight(p) {
				// this branch has shrunk
				p.setHeight()
				cnt += 1
			}
		} else if -2 == bf {
			switch balanceFactor(p.right) {
			case 0:
				p.height -= 1
				p.right.height += 1
				cnt += tree.rotateLeft(p)
				cnt += 2
			case -1:
				// single RR rotation
				p.height -= 2
				cnt += tree.rotateLeft(p)
				cnt += 1
			case 1:
				// double RL rotation
				p.height -= 2
				p.right.height -= 1
				p.right.left.height += 1
				cnt += 3
				cnt += tree.rotateRight(p.right)
				cnt += tree.rotateLeft(p)
			}
		} else { // bf == 2
			switch balanceFactor(p.left) {
			case 0:
				p.height -= 1
				p.left.height += 1
				cnt += tree.rotateRight(p)
				cnt += 2
			case 1:
				// single LL rotation
				p.height -= 2
				cnt += tree.rotateRight(p)
				cnt += 1
			case -1:
				// double LR rotation
				p.height -= 2
				p.left.height -= 1
				p.left.right.height += 1
				cnt += 3
				cnt += tree.rotateLeft(p.left)
				cnt += tree.rotateRight(p)
			}
		}
		p = p.up
	}
	return cnt
}
