// Parse, format and do sums with human readable byte sizes
package main

import (
	"github.com/huby-dev/huby/cmd"

	_ "github.com/huby-dev/huby/cmd/all" // import all commands
)

func main() {
	cmd.Main()
}
