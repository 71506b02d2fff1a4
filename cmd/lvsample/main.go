// SPDX-License-Identifier: MIT

// Command lvsample selects representative subsets of point populations with
// furthest point sampling, and generates or inspects populations.
package main

import "github.com/katalvlaran/lvsample/internal/cli"

func main() {
	cli.Run(&cli.CLI{}, "lvsample", "Furthest point sampling of point populations")
}
