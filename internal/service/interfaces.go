// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/memsearch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/compact_service_mock.go -package=mock

// CompactService compresses chunks into a single summary with an LLM.
type CompactService interface {
	Compact(ctx context.Context, chunks []models.Chunk, opts CompactOptions) (string, error)
}
