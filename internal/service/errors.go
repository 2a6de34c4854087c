// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoChunks           = errors.New("no chunks to compact")
	ErrMissingPlaceholder = errors.New("prompt template has no {chunks} placeholder")
)
