// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

type stringItem struct {
	s    string
	data string // not part of the ordering
}

func (s stringItem) String() string {
	return s.s
}

func compareItems(a stringItem, b stringItem) int {
	return strings.Compare(a.s, b.s)
}

func items(keys ...string) []stringItem {
	list := make([]stringItem, len(keys))
	for i, k := range keys {
		list[i] = stringItem{s: k, data: "data:" + k}
	}
	return list
}

func TestListShort(t *testing.T) {
	addList := items(
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	)
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := items(
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	)
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := items(
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	)

	doList(t, addList)
	doTraverse(t, addList)
}

// sorted list of the distinct keys
func uniqueSorted(addList []stringItem) []string {
	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key.s] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

func checkTree(t *testing.T, tree *avl.Tree[stringItem], stage string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		t.Errorf("%s: inconsistent tree: %s", stage, err)
		depth := tree.Print(os.Stdout, true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent tree")
	}
}

// insert everything, remove the i lowest one at a time then drain the
// rest, for every possible i
func doList(t *testing.T, addList []stringItem) {
	expected := uniqueSorted(addList)

	for i := 0; i < len(expected)+1; i += 1 {

		tree := avl.NewFunc(compareItems)
		for _, key := range addList {
			tree.Insert(key)
			checkTree(t, tree, "add")
		}

		if len(expected) != tree.Size() {
			t.Fatalf("size: actual: %d  expected: %d", tree.Size(), len(expected))
		}

		for _, key := range expected[:i] {
			item, ok := tree.RemoveMinimum()
			if !ok {
				t.Fatalf("remove: %q returned nothing", key)
			}
			if key != item.s {
				t.Fatalf("remove returned: %q  expected: %q", item.s, key)
			}
			if "data:"+key != item.data {
				t.Fatalf("remove data: %q  expected: %q", item.data, "data:"+key)
			}
			checkTree(t, tree, "remove")
		}

		if len(expected)-i != tree.Size() {
			t.Fatalf("size after remove: actual: %d  expected: %d", tree.Size(), len(expected)-i)
		}

		drain := tree.Drain()
		if !tree.IsEmpty() || 0 != tree.Size() {
			t.Fatalf("drain: source tree still holds: %d items", tree.Size())
		}

		n := i
		for item := range drain.All() {
			if expected[n] != item.s {
				t.Fatalf("drain item: actual: %q  expected: %q", item.s, expected[n])
			}
			n += 1
		}
		if n != len(expected) {
			t.Fatalf("drain count: actual: %d  expected: %d", n, len(expected))
		}
		if 0 != drain.Size() {
			t.Fatalf("drain remaining: %d", drain.Size())
		}
	}
}

// traverse the tree with the iterator and with range
func doTraverse(t *testing.T, addList []stringItem) {
	expected := uniqueSorted(addList)

	tree := avl.NewFunc(compareItems)
	for _, key := range addList {
		tree.Insert(key)
	}

	it := tree.Iterator()
	n := 0
	for i := 0; ; i += 1 {
		item, ok := it.Next()
		if !ok {
			break
		}
		if expected[i] != item.s {
			t.Fatalf("next item: actual: %q  expected: %q", item.s, expected[i])
		}
		n += 1
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	// exhausted iterator stays exhausted
	if _, ok := it.Next(); ok {
		t.Fatal("iterator restarted")
	}

	n = 0
	for item := range tree.All() {
		if expected[n] != item.s {
			t.Fatalf("range item: actual: %q  expected: %q", item.s, expected[n])
		}
		n += 1
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// the iteration must not have changed anything
	checkTree(t, tree, "traverse")

	for _, key := range expected {
		item, ok := tree.Search(stringItem{s: key})
		if !ok {
			t.Fatalf("search: %q not found", key)
		}
		if "data:"+key != item.data {
			t.Fatalf("search: %q data: %q", key, item.data)
		}
	}

	tree.Clear()
	if !tree.IsEmpty() {
		t.Fatal("clear: remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

func makeKey() stringItem {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	k := fmt.Sprintf("%04d", n%10000)
	return stringItem{s: k, data: "data:" + k}
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toRemove int) {
	tree := avl.NewFunc(compareItems)
	added := make([]stringItem, 0, total)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if tree.Insert(key) {
			added = append(added, key)
		}
	}
	checkTree(t, tree, "random add")

	expected := uniqueSorted(added)
	if len(expected) != len(added) {
		t.Fatalf("insert accepted duplicates: %d  unique: %d", len(added), len(expected))
	}
	if len(expected) != tree.Size() {
		t.Fatalf("size: actual: %d  expected: %d", tree.Size(), len(expected))
	}

	// log2(10000) ≈ 13.3 and an AVL tree is at most 1.44 times taller
	// than a perfect tree
	if tree.Height() > 20 {
		t.Fatalf("tree too tall: %d", tree.Height())
	}

	if toRemove > len(expected) {
		toRemove = len(expected)
	}
	for i := 0; i < toRemove; i += 1 {
		item, ok := tree.RemoveMinimum()
		if !ok || expected[i] != item.s {
			t.Fatalf("remove: %q  expected: %q", item.s, expected[i])
		}
		checkTree(t, tree, "random remove")
	}

	// add back the test value
	testKey := stringItem{s: "500", data: "just testing data: test 500 value"}
	tree.Insert(testKey)
	checkTree(t, tree, "add test key")

	tv, ok := tree.Search(stringItem{s: "500"})
	if !ok {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.data, testKey.data)
	}

	doTraverse(t, added)
}

func TestAscendingInsertStaysShallow(t *testing.T) {
	tree := avl.New[int]()
	const n = 1 << 16
	for i := 0; i < n; i += 1 {
		tree.Insert(i)
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("check: %s", err)
	}
	// a perfect tree of 2^16 - 1 nodes has height 16
	if h := tree.Height(); h != 17 {
		t.Fatalf("height: actual: %d  expected: %d", h, 17)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := avl.New[string]()
	for _, key := range []string{"01", "02", "03", "04", "05", "06", "07"} {
		tree.Insert(key)
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}
