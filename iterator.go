// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// First - return the node with the lowest key value, nil if the tree
// is empty
func (tree *Tree) First() *Node {
	return tree.min
}

// Last - return the node with the highest key value, nil if the tree
// is empty
func (tree *Tree) Last() *Node {
	return tree.max
}

// internal: lowest node in a sub-tree
func subtreeMin(p *Node) *Node {
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func subtreeMax(p *Node) *Node {
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes
func (p *Node) Next() *Node {
	if nil != p.right {
		return subtreeMin(p.right)
	}
	q := p.up
	for nil != q && p == q.right {
		p = q
		q = q.up
	}
	return q
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	if nil != p.left {
		return subtreeMax(p.left)
	}
	q := p.up
	for nil != q && p == q.left {
		p = q
		q = q.up
	}
	return q
}

// Min - the value stored under the smallest key, or ErrEmptyTree
func (tree *Tree) Min() (string, error) {
	if tree.IsEmpty() {
		return "", ErrEmptyTree
	}
	return tree.min.value, nil
}

// Max - the value stored under the largest key, or ErrEmptyTree
func (tree *Tree) Max() (string, error) {
	if tree.IsEmpty() {
		return "", ErrEmptyTree
	}
	return tree.max.value, nil
}

// Keys - all keys in ascending order
//
// walks from the cached minimum via successor; empty slice for an
// empty tree
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.Count())
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// Values - all values ordered by their keys
func (tree *Tree) Values() []string {
	values := make([]string, 0, tree.Count())
	for p := tree.First(); nil != p; p = p.Next() {
		values = append(values, p.value)
	}
	return values
}
