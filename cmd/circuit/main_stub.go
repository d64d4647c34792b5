//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of circuitgen requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/circuit`, or use ./cmd/circuit-tui or ./cmd/circuit-png.")
	os.Exit(2)
}
