// Command vclassroom is an interactive classroom manager: it creates
// classrooms, enrolls students and tracks assignment submissions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
