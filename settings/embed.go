package settings

import "embed"

const embeddedName = "settings.yaml"

//go:embed settings.yaml
var Embedded embed.FS
