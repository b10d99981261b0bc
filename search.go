// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// locate - positional search
//
// descend from the root following key order and return the node with
// the given key if it is present, otherwise the last real node
// visited, i.e. the node that would become the parent on insert;
// returns nil only when the tree is empty
func (tree *Tree) locate(key int) *Node {
	p := tree.root
	if nil == p {
		return nil
	}
	for {
		switch {
		case key == p.key:
			return p
		case key < p.key:
			if nil == p.left {
				return p
			}
			p = p.left
		default: // key > p.key
			if nil == p.right {
				return p
			}
			p = p.right
		}
	}
}

// Search - find the value stored under a specific key
func (tree *Tree) Search(key int) (string, error) {
	p := tree.locate(key)
	if nil == p || p.key != key {
		return "", ErrKeyNotFound
	}
	return p.value, nil
}
