package main

import (
	"fmt"
	"orgmaster/cmd/orgmaster"
	"os"
)

func main() {
	if err := orgmaster.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
