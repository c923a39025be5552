package main

import (
	"fmt"
	"os"

	"spinwheel/ui"
)

func main() {
	if err := ui.RunSpinwheel(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
