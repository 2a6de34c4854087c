// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/memsearch/internal/adapter"
	"github.com/MKhiriev/memsearch/internal/logger"
)

// Services groups the services the command line dispatches to.
type Services struct {
	CompactService CompactService
}

func NewServices(creds adapter.Credentials, logger *logger.Logger) *Services {
	return &Services{
		CompactService: NewCompactService(NewAdapterFactory(creds, logger), logger),
	}
}
