// Package all imports all the commands
package all

import (
	// Active commands
	_ "github.com/huby-dev/huby/cmd"
	_ "github.com/huby-dev/huby/cmd/compare"
	_ "github.com/huby-dev/huby/cmd/config"
	_ "github.com/huby-dev/huby/cmd/convert"
	_ "github.com/huby-dev/huby/cmd/format"
	_ "github.com/huby-dev/huby/cmd/parse"
	_ "github.com/huby-dev/huby/cmd/sort"
	_ "github.com/huby-dev/huby/cmd/sub"
	_ "github.com/huby-dev/huby/cmd/sum"
	_ "github.com/huby-dev/huby/cmd/version"
)
