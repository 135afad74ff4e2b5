//
//  Copyright 2026 The uvfs authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Package mountconfig loads a declarative list of mounts from an INI-style
// configuration file, for use by the cmd/uvfsctl and cmd/uvfsserve
// binaries. A config file has one "[mount \"<name>\"]" section per mount:
//
//	[mount "assets"]
//	type = romfs
//
//	[mount "overlay"]
//	type = osfs
//	basepath = /srv/myapp/data
//	readonly = false
//
// Sections are applied to a mount.Engine in file order, since mount order
// is priority order.
package mountconfig

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mvo5/goconfigparser"

	"github.com/unionvfs/uvfs"
	"github.com/unionvfs/uvfs/fs/osfs"
	"github.com/unionvfs/uvfs/mount"
)

// Spec is one parsed "[mount ...]" section, in file order.
type Spec struct {
	Name     string
	Point    uvfs.Path
	Type     string // "romfs" or "osfs"
	BasePath string // osfs only
	ReadOnly bool   // osfs only
}

var mountSectionPattern = regexp.MustCompile(`^\[(mount\s+"([^"]+)")\]\s*$`)

// Load parses the config file at path and returns its mount specs in file
// order. Section order is recovered from the raw text, since order is
// mount priority and must survive parsing.
func Load(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := goconfigparser.New()
	if err := cfg.ReadString(string(data)); err != nil {
		return nil, fmt.Errorf("mountconfig: parsing %s: %w", path, err)
	}

	var specs []Spec

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		m := mountSectionPattern.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}

		spec, err := parseSection(cfg, m[1], m[2])
		if err != nil {
			return nil, fmt.Errorf("mountconfig: [%s]: %w", m[1], err)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func parseSection(cfg *goconfigparser.ConfigParser, section, name string) (Spec, error) {
	point, err := cfg.Get(section, "point")
	if err != nil || point == "" {
		point = "/"
	}

	p, err := uvfs.New(point)
	if err != nil {
		return Spec{}, fmt.Errorf("invalid point %q: %w", point, err)
	}

	if !p.IsDir() {
		return Spec{}, fmt.Errorf("point %q is not a directory path", point)
	}

	typ, err := cfg.Get(section, "type")
	if err != nil || typ == "" {
		return Spec{}, fmt.Errorf("missing required key %q", "type")
	}

	spec := Spec{Name: name, Point: p, Type: typ}

	switch typ {
	case "romfs":
		// No type-specific keys.
	case "osfs":
		basePath, err := cfg.Get(section, "basepath")
		if err != nil || basePath == "" {
			return Spec{}, fmt.Errorf("osfs mount %q requires %q", name, "basepath")
		}

		spec.BasePath = basePath

		readOnlyStr, err := cfg.Get(section, "readonly")
		if err == nil && readOnlyStr != "" {
			readOnly, err := strconv.ParseBool(readOnlyStr)
			if err != nil {
				return Spec{}, fmt.Errorf("invalid boolean %q for %q", readOnlyStr, "readonly")
			}

			spec.ReadOnly = readOnly
		}
	default:
		return Spec{}, fmt.Errorf("unknown mount type %q", typ)
	}

	return spec, nil
}

// Apply mounts every spec into engine, in order. A "romfs" spec with no
// accompanying static listing mounts an empty tree: config-driven romfs
// mounts exist mainly as placeholders documenting intended mount order,
// since romfs content is ordinarily supplied at compile time via
// fs/romfs.New, not discovered from a config file.
func Apply(engine *mount.Engine, specs []Spec) error {
	for _, spec := range specs {
		switch spec.Type {
		case "romfs":
			if err := engine.Mount(spec.Point, emptyRomfs{}); err != nil {
				return err
			}
		case "osfs":
			if err := engine.Mount(spec.Point, osfs.New(spec.BasePath, spec.ReadOnly)); err != nil {
				return err
			}
		}
	}

	return nil
}

// emptyRomfs is a placeholder uvfs.Source for a config-declared romfs
// mount with no compiled-in listing.
type emptyRomfs struct{}

func (emptyRomfs) Open(uvfs.Path) (uvfs.DataFile, error) { return nil, uvfs.ErrNotFound }
func (emptyRomfs) List(path uvfs.Path) ([]uvfs.Path, error) {
	if path == "/" {
		return nil, nil
	}

	return nil, uvfs.ErrNotFound
}
func (emptyRomfs) Update(uvfs.Path, []byte) error { return uvfs.ErrReadOnlyFilesystem }
