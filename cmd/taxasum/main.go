// SPDX-License-Identifier: MIT

// Command taxasum summarizes category abundance tables: it selects samples,
// reduces them per category, names the result and prints or plots it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/taxasum/internal/logger"
)

var version = "0.1.0"

func main() {
	root := newRootCmd()
	err := root.ExecuteContext(context.Background())
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
