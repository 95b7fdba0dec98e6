// Command picker shows a numbered list of options and prints the one chosen.
//
//	picker -t "Delete branch?" yes no
//	picker -c options.yaml --print -w 40
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
