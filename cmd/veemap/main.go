// Command veemap maps KiCad netlist footprints to VeeCAD outlines.
package main

import (
	"os"

	"github.com/OpenTraceLab/veemap/cmd/veemap/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
