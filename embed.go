package leader

import "embed"

// ContentFS holds editable journal content such as the reflection prompt pool.
//
//go:embed content
var ContentFS embed.FS
