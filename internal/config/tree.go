// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"sort"
	"strings"
)

// Tree is an untyped configuration layer. Values are scalars (string, int,
// bool), nested trees, or nil. A nil leaf in an override layer leaves the
// underlying value untouched.
type Tree map[string]any

// Clone returns a deep copy of t.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		if sub, ok := asTree(v); ok {
			out[k] = sub.Clone()
			continue
		}
		out[k] = v
	}
	return out
}

// Lookup returns the value at the dotted path and whether every segment of
// the path exists.
func (t Tree) Lookup(path string) (any, bool) {
	var cur any = t
	for _, seg := range strings.Split(path, ".") {
		node, ok := asTree(cur)
		if !ok {
			return nil, false
		}
		cur, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Leaves flattens t into dotted paths. Nil leaves are skipped.
func (t Tree) Leaves() map[string]any {
	out := make(map[string]any)
	t.collectLeaves("", out)
	return out
}

func (t Tree) collectLeaves(prefix string, out map[string]any) {
	for k, v := range t {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if sub, ok := asTree(v); ok {
			sub.collectLeaves(path, out)
			continue
		}
		if v != nil {
			out[path] = v
		}
	}
}

// Paths returns the dotted paths of t's leaves in lexical order.
func (t Tree) Paths() []string {
	leaves := t.Leaves()
	paths := make([]string, 0, len(leaves))
	for p := range leaves {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// setLeaf writes v at the dotted path, creating (or replacing non-tree
// values with) intermediate trees as needed.
func (t Tree) setLeaf(path string, v any) {
	segs := strings.Split(path, ".")
	node := t
	for _, seg := range segs[:len(segs)-1] {
		next, ok := asTree(node[seg])
		if !ok {
			next = Tree{}
		}
		node[seg] = next
		node = next
	}
	node[segs[len(segs)-1]] = v
}

// leafTree returns a tree holding exactly one leaf.
func leafTree(path string, v any) Tree {
	t := Tree{}
	t.setLeaf(path, v)
	return t
}

// prune returns a copy of t without nil leaves and without trees left empty
// by their removal.
func (t Tree) prune() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		if v == nil {
			continue
		}
		if sub, ok := asTree(v); ok {
			p := sub.prune()
			if len(p) == 0 && len(sub) != 0 {
				continue
			}
			out[k] = p
			continue
		}
		out[k] = v
	}
	return out
}

func asTree(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	default:
		return nil, false
	}
}

// normalize converts decoded file values into the shapes a Tree holds:
// nested maps become Tree and integers become int.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeTree(val)
	case Tree:
		return normalizeTree(val)
	case int64:
		return int(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func normalizeTree(m map[string]any) Tree {
	out := make(Tree, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}
