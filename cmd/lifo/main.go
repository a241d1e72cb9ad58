// Command lifo pushes its input onto a bounded stack and prints it back.
package main

import "os"

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		a.log.WithError(err).Error("lifo failed")
		os.Exit(1)
	}
}
