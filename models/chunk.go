// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Chunk is one piece of indexed text fed to compaction.
type Chunk struct {
	// Content is the chunk text.
	Content string
	// Source names where the chunk came from, usually a file path.
	Source string
}
