package main

import (
	"os"

	"github.com/Yorfad/PROVIAL-sub003/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
