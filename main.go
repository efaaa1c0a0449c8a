package main

import (
	"github.com/notargets/sphkern/cmd"
)

func main() {
	cmd.Execute()
}
