// Command santa simulates the Santa Claus problem from The Little Book of
// Semaphores.
package main

import (
	"fmt"
	"os"

	"github.com/pgoodman/uwo-santa-clause/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
