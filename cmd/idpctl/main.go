// Command idpctl inspects the MonoCloud provider integration: the
// descriptor an engine would register, the effective claim shape, and the
// claims of a token partitioned against it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
