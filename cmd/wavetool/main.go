// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/dspkit/wavetool/internal/cli"
)

func main() {
	os.Exit(cli.New(nil).Execute(os.Args[1:]))
}
