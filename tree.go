// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Tree - type to hold the root node of a tree
//
// the extreme nodes are cached so Min/Max/First/Last are O(1)
type Tree struct {
	root *Node
	min  *Node
	max  *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// wrap a detached subtree as an independent tree
//
// the subtree is severed from its former parent; its extreme nodes
// are recomputed by walking the outer spines
func newSubtree(p *Node) *Tree {
	p.up = nil
	return &Tree{
		root: p,
		min:  subtreeMin(p),
		max:  subtreeMax(p),
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return count(tree.root)
}

// Root - return the root node of the tree, nil if the tree is empty
func (tree *Tree) Root() *Node {
	return tree.root
}
