// Command dxfcam derives machining artifacts from 2D DXF drawings: offset
// geometry, an ordered entity traversal and G-code toolpaths.
package main

import (
	"log"
	"os"

	"dxf-cam/internal/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
