// Command path2contours converts SVG path data to TrueType-style contours and
// prints them as JSON, one line per path.
//
// Paths are read from the arguments, or from standard input, one path per
// line, if no arguments are given.
//
//	path2contours -m 1,0,0,-1,0,800 --round 'M0 0C0 40 40 40 40 0Z'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
