// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCounterFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "uint8"},
		{4, "uint8"},
		{200, "uint8"},
		{255, "uint8"},
		{256, "uint16"},
		{1000, "uint16"},
		{65535, "uint16"},
		{65536, "uint32"},
		{100000, "uint32"},
	}
	for _, tt := range tests {
		got, err := CounterFor(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "CounterFor(%d)", tt.n)
	}

	_, err := CounterFor(-1)
	assert.Error(t, err)
}

func TestPlan(t *testing.T) {
	t.Parallel()

	var config Config
	require.NoError(t, yaml.Unmarshal([]byte(`
ranges:
  - {from: 2, to: 4}
capacities:
  - n: 1000
  - n: 3
    docs: Three is a magic number.
  - n: 300
    counter: uint16
`), &config))

	caps, err := Plan(config)
	require.NoError(t, err)
	assert.Equal(t, []Capacity{
		{N: 2, Counter: "uint8"},
		{N: 3, Counter: "uint8", Docs: "Three is a magic number."},
		{N: 4, Counter: "uint8"},
		{N: 300, Counter: "uint16"},
		{N: 1000, Counter: "uint16"},
	}, caps)

	_, err = Plan(Config{Capacities: []Capacity{{N: 300, Counter: "uint8"}}})
	assert.ErrorContains(t, err, "counter must be uint16")

	_, err = Plan(Config{Ranges: []Range{{From: 5, To: 4}}})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	err := Render(&out, Input{
		Binary:  "github.com/bufbuild/arrayvec/internal/gencap",
		Package: "arrayvec",
		Config:  "capacities.yaml",
		Capacities: []Capacity{
			{N: 4, Counter: "uint8"},
			{N: 1000, Counter: "uint16", Docs: "Documented."},
		},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "// Code generated by github.com/bufbuild/arrayvec/internal/gencap. DO NOT EDIT.\n")
	assert.Contains(t, text, "\npackage arrayvec\n")
	assert.Contains(t, text, `
// Cap4 is a 4-element backing array with a uint8 length counter.
type Cap4[T any] [4]T

// Cap implements [Array].
func (Cap4[T]) Cap() int { return 4 }

func (Cap4[T]) storage(T, uint8) {}
`)
	assert.Contains(t, text, `
// Cap1000 is a 1000-element backing array with a uint16 length counter.
//
// Documented.
type Cap1000[T any] [1000]T
`)
	assert.NotContains(t, text, "\n\n\ntype ")
	assert.NotContains(t, text, "Documented.\n\n")
	assert.True(t, strings.HasSuffix(text, "func (Cap1000[T]) storage(T, uint16) {}\n"))
}

func TestMakeDocs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, makeDocs("", ""))
	assert.Equal(t, "// One line.", makeDocs("One line.\n", ""))
	assert.Equal(t, "\t// First.\n\t//\n\t// Second.", makeDocs("First.\n\nSecond.", "\t"))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := filepath.Join(dir, "caps.yaml")
	require.NoError(t, os.WriteFile(config, []byte("ranges: [{from: 1, to: 2}]\n"), 0o600))
	require.NoError(t, Main(config))

	text, err := os.ReadFile(filepath.Join(dir, "caps.go"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "// source: "+config+"\n")
	assert.Contains(t, string(text), "type Cap2[T any] [2]T\n")
	assert.NotContains(t, string(text), "Cap3")

	// The committed catalogue is exactly what the generator produces.
	committed, err := os.ReadFile("../../capacities.go")
	require.NoError(t, err)
	source, err := os.ReadFile("../../capacities.yaml")
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, yaml.Unmarshal(source, &cfg))
	caps, err := Plan(cfg)
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, Render(&out, Input{
		Binary:     "github.com/bufbuild/arrayvec/internal/gencap",
		Package:    "arrayvec",
		Config:     "capacities.yaml",
		Capacities: caps,
	}))
	assert.Equal(t, string(committed), out.String())

	assert.Error(t, Main(filepath.Join(dir, "caps.json")))
	assert.Error(t, Main(filepath.Join(dir, "missing.yaml")))
}
