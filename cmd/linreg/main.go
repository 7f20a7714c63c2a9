// SPDX-License-Identifier: MIT

// Command linreg fits ordinary least-squares models from YAML datasets.
package main

import "github.com/katalvlaran/linreg/internal/cli"

func main() {
	cli.Execute()
}
