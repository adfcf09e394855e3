// Package configs embeds the default YAML configuration.
package configs

import "embed"

// FS holds display.yaml, character.yaml and stages/*.yaml
//
//go:embed *.yaml stages/*.yaml
var FS embed.FS
