// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// decodeConfigSection reads a YAML config file and decodes the named
// top-level section into out, leaving fields the section does not
// mention untouched. A file without the section is not an error; the
// command then runs on flags and defaults alone.
//
// Precedence, lowest to highest: built-in defaults, config file,
// explicitly set flags. Callers enforce the last step by re-applying
// changed flags after this decode.
func decodeConfigSection(path, section string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	node, ok := doc[section]
	if !ok {
		return nil
	}
	if err := node.Decode(out); err != nil {
		return fmt.Errorf("config %s, section %q: %w", path, section, err)
	}
	return nil
}
