// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log/slog"
	"os"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("host failed", "err", err)
		os.Exit(1)
	}
}
