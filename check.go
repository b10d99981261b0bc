// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// Check - verify the structural invariants of the whole tree
//
// checks the parent pointers, key ordering, AVL balance, the cached
// heights and sizes and the cached extreme nodes; returns a
// description of the first violation found, nil when consistent;
// intended for tests and debugging
func (tree *Tree) Check() error {
	if nil == tree.root {
		if nil != tree.min {
			return fmt.Errorf("empty tree caches minimum node %d", tree.min.key)
		}
		if nil != tree.max {
			return fmt.Errorf("empty tree caches maximum node %d", tree.max.key)
		}
		return nil
	}
	if nil != tree.root.up {
		return fmt.Errorf("root node %d has a parent", tree.root.key)
	}
	if err := checkNode(tree.root); nil != err {
		return err
	}
	if tree.min != subtreeMin(tree.root) {
		return fmt.Errorf("cached minimum is not the lowest node")
	}
	if tree.max != subtreeMax(tree.root) {
		return fmt.Errorf("cached maximum is not the highest node")
	}
	return nil
}

// internal: consistency checker for one subtree
func checkNode(p *Node) error {
	if nil != p.left {
		if p.left.up != p {
			return fmt.Errorf("node %d: left child %d has wrong parent", p.key, p.left.key)
		}
		if m := subtreeMax(p.left); m.key >= p.key {
			return fmt.Errorf("node %d: left subtree holds larger key %d", p.key, m.key)
		}
		if err := checkNode(p.left); nil != err {
			return err
		}
	}
	if nil != p.right {
		if p.right.up != p {
			return fmt.Errorf("node %d: right child %d has wrong parent", p.key, p.right.key)
		}
		if m := subtreeMin(p.right); m.key <= p.key {
			return fmt.Errorf("node %d: right subtree holds smaller key %d", p.key, m.key)
		}
		if err := checkNode(p.right); nil != err {
			return err
		}
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		return fmt.Errorf("node %d: balance factor %d", p.key, bf)
	}
	if p.height != computedHeight(p) {
		return fmt.Errorf("node %d: cached height %d, actual %d", p.key, p.height, computedHeight(p))
	}
	if expected := count(p.left) + count(p.right) + 1; p.size != expected {
		return fmt.Errorf("node %d: cached size %d, actual %d", p.key, p.size, expected)
	}
	return nil
}
