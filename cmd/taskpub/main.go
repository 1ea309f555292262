// Command taskpub publishes a task-service export to the broker as the
// retained snapshot taskdeck devices subscribe to.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
