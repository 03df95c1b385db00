// Command sectiongenexample decodes a configuration file with sections
// parsed by generated accessors.
//
//	go run . config.yaml
package main

import (
	"fmt"
	"os"

	"example.com/sectiongenexample/section"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sectiongenexample CONFIG")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := section.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	fmt.Printf("%+v\n", cfg)
}
