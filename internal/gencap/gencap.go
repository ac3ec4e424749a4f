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

// gencap generates the capacity types that back arrayvec's containers.
//
// To generate capacity types for a package, use
//
//	//go:generate go run github.com/bufbuild/arrayvec/internal/gencap capacities.yaml
//
// The argument is a YAML file containing a [Config]. The output is written to
// a file with the same name, with the .yaml extension replaced by .go.
package main

import (
	"cmp"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/arrayvec/internal/ext/bitsx"
	"github.com/bufbuild/arrayvec/internal/ext/osx"
)

// Config is the contents of a capacities.yaml file.
type Config struct {
	// Inclusive ranges of capacities to generate.
	Ranges []Range `yaml:"ranges"`
	// Individual capacities to generate.
	Capacities []Capacity `yaml:"capacities"`
}

// Range is an inclusive range of capacities.
type Range struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Capacity is a single capacity to generate a type for.
type Capacity struct {
	N int `yaml:"n"`
	// The counter type for this capacity. Optional; if set, it must agree
	// with the width picked by [CounterFor].
	Counter string `yaml:"counter"`
	// Extra documentation for the generated type.
	Docs string `yaml:"docs"`
}

// Name returns the name of the generated type.
func (c Capacity) Name() string {
	return fmt.Sprintf("Cap%d", c.N)
}

// Width returns the width of this capacity's counter in bytes.
func (c Capacity) Width() int {
	return bitsx.ByteWidth(uint64(c.N))
}

// CounterFor returns the name of the narrowest counter type for capacity n.
func CounterFor(n int) (string, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return "", fmt.Errorf("capacity out of range: %d", n)
	}
	switch bitsx.ByteWidth(uint64(n)) {
	case 1:
		return "uint8", nil
	case 2:
		return "uint16", nil
	default:
		return "uint32", nil
	}
}

// Plan expands a config into the sorted list of capacities to generate.
func Plan(config Config) ([]Capacity, error) {
	byN := make(map[int]Capacity)
	add := func(c Capacity) error {
		counter, err := CounterFor(c.N)
		if err != nil {
			return err
		}
		if c.Counter != "" && c.Counter != counter {
			return fmt.Errorf("capacity %d: counter must be %s, got %s", c.N, counter, c.Counter)
		}
		c.Counter = counter

		if prev, ok := byN[c.N]; ok && c.Docs == "" {
			c.Docs = prev.Docs
		}
		byN[c.N] = c
		return nil
	}

	for _, r := range config.Ranges {
		if r.From > r.To {
			return nil, fmt.Errorf("invalid range: %d > %d", r.From, r.To)
		}
		for n := r.From; n <= r.To; n++ {
			if err := add(Capacity{N: n}); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range config.Capacities {
		if err := add(c); err != nil {
			return nil, err
		}
	}

	caps := make([]Capacity, 0, len(byN))
	for _, c := range byN {
		caps = append(caps, c)
	}
	slices.SortFunc(caps, func(a, b Capacity) int { return cmp.Compare(a.N, b.N) })
	return caps, nil
}

//go:embed capacities.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("capacities.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
}).Parse(tmplText))

// Input is the data the template is executed against.
type Input struct {
	Binary, Package, Config string
	Capacities              []Capacity
}

// Render writes the generated file for the given input to w.
func Render(w io.Writer, input Input) error {
	return tmpl.ExecuteTemplate(w, "capacities.go.tmpl", input)
}

// makeDocs converts data into doc comment lines. The last line has no
// trailing newline; the template supplies it.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	input := Input{
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
	}

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	input.Binary = info.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	var cfg Config
	if err := yaml.Unmarshal(text, &cfg); err != nil {
		return err
	}
	input.Capacities, err = Plan(cfg)
	if err != nil {
		return err
	}

	path := strings.TrimSuffix(config, ".yaml") + ".go"
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, osx.PermGenerated)
	if err != nil {
		return err
	}
	defer out.Close()
	return Render(out, input)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
