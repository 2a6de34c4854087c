// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Merge returns a new tree with override layered on top of base.
//
// For every key in override:
//   - a nil value is skipped, keeping whatever base holds;
//   - when both sides hold trees the merge recurses;
//   - otherwise the override value replaces the base value, even when the
//     type changes.
//
// Keys only present in base are kept. Neither input is modified.
func Merge(base, override Tree) Tree {
	merged := base.Clone()
	if merged == nil {
		merged = Tree{}
	}

	for k, ov := range override {
		if ov == nil {
			continue
		}

		if osub, ok := asTree(ov); ok {
			if bsub, ok := asTree(merged[k]); ok {
				merged[k] = Merge(bsub, osub)
				continue
			}
			// An override subtree made only of nil leaves touches nothing.
			if sub := Merge(nil, osub); len(sub) > 0 || len(osub) == 0 {
				merged[k] = sub
			}
			continue
		}

		merged[k] = ov
	}

	return merged
}
