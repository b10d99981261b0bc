// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Node - a node in the tree
type Node struct {
	left   *Node  // owned left subtree
	right  *Node  // owned right subtree
	up     *Node  // points to parent node
	key    int    // key part for ordering
	value  string // value part for data storage
	height int    // cached subtree height, 0 for a leaf
	size   int    // cached subtree node count
}

// allocate a new leaf node below the given parent
func newNode(key int, value string, up *Node) *Node {
	return &Node{
		key:    key,
		value:  value,
		up:     up,
		height: 0,
		size:   1,
	}
}

// height of a possibly missing subtree, -1 when there is no child
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// node count of a possibly missing subtree, 0 when there is no child
func count(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// balance factor: left height - right height, must stay in -1..+1
func balanceFactor(p *Node) int {
	return height(p.left) - height(p.right)
}

// the height the node must cache given its current children
func computedHeight(p *Node) int {
	h := height(p.left)
	if r := height(p.right); r > h {
		h = r
	}
	return h + 1
}

// recompute the cached height from the children
func (p *Node) setHeight() {
	p.height = computedHeight(p)
}

// recompute the cached size from the children
func (p *Node) setSize() {
	p.size = count(p.left) + count(p.right) + 1
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Value - read the value from a node
func (p *Node) Value() string {
	return p.value
}

// Left - return left child of a node, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - return right child of a node, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node, nil for the root
func (p *Node) Parent() *Node {
	return p.up
}

// Height - cached height of the subtree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Size - cached node count of the subtree rooted at this node
func (p *Node) Size() int {
	return p.size
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	depth := uint(0)
	parent := p.up
	for parent != nil {
		depth += 1
		parent = parent.up
	}
	return depth
}
