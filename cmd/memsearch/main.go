// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/memsearch/internal/cli"
	"github.com/MKhiriev/memsearch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
