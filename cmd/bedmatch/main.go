// BedMatch ranks CNC work surfaces for a batch of identical rectangular parts.
//
// Build:
//
//	go build -o bedmatch ./cmd/bedmatch
package main

import "github.com/piwi3910/BedMatch/cmd/bedmatch/cmd"

func main() {
	cmd.Execute()
}
