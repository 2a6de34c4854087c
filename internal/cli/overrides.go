// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/memsearch/internal/config"
	"github.com/spf13/pflag"
)

// flagBinding ties a command-line flag to a config field.
type flagBinding struct {
	flag  string
	path  string
	usage string
}

var flagBindings = []flagBinding{
	{flag: "milvus-uri", path: "milvus.uri", usage: "Milvus URI or local db path"},
	{flag: "collection", path: "milvus.collection", usage: "Milvus collection name"},
	{flag: "provider", path: "embedding.provider", usage: "embedding provider"},
	{flag: "llm-provider", path: "compact.llm_provider", usage: "LLM provider used by compact"},
	{flag: "max-chunk-size", path: "chunking.max_chunk_size", usage: "maximum chunk size in characters"},
	{flag: "overlap-lines", path: "chunking.overlap_lines", usage: "lines shared by consecutive chunks"},
	{flag: "debounce-ms", path: "watch.debounce_ms", usage: "watcher debounce in milliseconds"},
}

type overrideFlags struct {
	values      map[string]*string
	assignments []string
}

func (o *overrideFlags) register(fs *pflag.FlagSet) {
	o.values = make(map[string]*string, len(flagBindings))
	for _, b := range flagBindings {
		o.values[b.flag] = fs.String(b.flag, "", b.usage)
	}
	fs.StringArrayVar(&o.assignments, "set", nil, "override any config key, as key=value (repeatable)")
}

// tree builds the flag layer. Only flags set on the command line appear in
// it; --set assignments come first so named flags win over them.
func (o *overrideFlags) tree(fs *pflag.FlagSet) (config.Tree, error) {
	out, err := config.ParseAssignments(o.assignments)
	if err != nil {
		return nil, err
	}

	for _, b := range flagBindings {
		if !fs.Changed(b.flag) {
			continue
		}

		t, err := config.OverrideTree(b.path, *o.values[b.flag])
		if err != nil {
			return nil, err
		}
		out = config.Merge(out, t)
	}

	return out, nil
}
