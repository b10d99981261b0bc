// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree_test

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/bitmark-inc/avltree"
)

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert the whole list then delete every possible prefix, checking
// the structural invariants after each phase
func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		tree := avltree.New()
		for _, key := range addList {
			_, err := tree.Insert(key, data(key))
			if nil != err {
				t.Fatalf("insert: %d: error: %s", key, err)
			}
		}
		if tree.Count() != len(addList) {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(addList))
		}

		if err := tree.Check(); nil != err {
			t.Errorf("add: inconsistent tree: %s", err)
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}

		for _, key := range addList[:i] {
			sv, err := tree.Search(key)
			if nil != err {
				t.Fatalf("search: %d: error: %s", key, err)
			}
			if sv != data(key) {
				t.Fatalf("search returned: %q  expected: %q", sv, data(key))
			}
			_, err = tree.Delete(key)
			if nil != err {
				t.Fatalf("delete: %d: error: %s", key, err)
			}
		}

		if err := tree.Check(); nil != err {
			t.Errorf("delete: inconsistent tree: %s", err)
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}

		for _, key := range addList[i:] {
			_, err := tree.Delete(key)
			if nil != err {
				t.Fatalf("delete remainder: %d: error: %s", key, err)
			}
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []int) {

	tree := avltree.New()
	for _, key := range addList {
		_, err := tree.Insert(key, data(key))
		if nil != err {
			t.Fatalf("insert: %d: error: %s", key, err)
		}
	}

	expected := make([]int, len(addList))
	copy(expected, addList)
	sort.Ints(expected)

	p := tree.First()
	if nil == p {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; nil != p; i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %d  expected: %d", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	keys := tree.Keys()
	for i, key := range keys {
		if key != expected[i] {
			t.Fatalf("keys[%d]: actual: %d  expected: %d", i, key, expected[i])
		}
	}

	for _, key := range expected {
		_, err := tree.Delete(key)
		if nil != err {
			t.Fatalf("delete: %d: error: %s", key, err)
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("remainder: remaining nodes")
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
}

// a long fixed-seed random mix of inserts and deletes verified
// against a shadow map
func TestRandomMix(t *testing.T) {

	r := rand.New(rand.NewSource(1042))
	shadow := make(map[int]string)
	tree := avltree.New()

	for i := 0; i < 2000; i += 1 {
		key := r.Intn(500)
		if r.Intn(2) == 0 {
			_, err := tree.Insert(key, data(key))
			_, present := shadow[key]
			if present && err != avltree.ErrDuplicateKey {
				t.Fatalf("insert: %d: duplicate not detected", key)
			}
			if !present {
				if nil != err {
					t.Fatalf("insert: %d: error: %s", key, err)
				}
				shadow[key] = data(key)
			}
		} else {
			_, err := tree.Delete(key)
			_, present := shadow[key]
			if !present && err != avltree.ErrKeyNotFound {
				t.Fatalf("delete: %d: missing not detected", key)
			}
			if present {
				if nil != err {
					t.Fatalf("delete: %d: error: %s", key, err)
				}
				delete(shadow, key)
			}
		}

		if i%50 != 0 {
			continue
		}
		if err := tree.Check(); nil != err {
			t.Errorf("inconsistent tree: %s", err)
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("inconsistent tree")
		}
		expected := make([]int, 0, len(shadow))
		for key := range shadow {
			expected = append(expected, key)
		}
		sort.Ints(expected)
		keys := tree.Keys()
		if len(keys) != len(expected) {
			t.Fatalf("key count: actual: %d  expected: %d", len(keys), len(expected))
		}
		for j, key := range keys {
			if key != expected[j] {
				t.Fatalf("keys[%d]: actual: %d  expected: %d", j, key, expected[j])
			}
		}
	}
}

// value stored for a key throughout the tests
func data(key int) string {
	return "data:" + strconv.Itoa(key)
}
