package config

import _ "embed"

//go:embed defaults/upwords.yaml
var defaultYAML []byte
