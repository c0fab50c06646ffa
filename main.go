package main

import (
	"fmt"
	"os"
	"redactsync/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("redactsync run into an error: %s\n", err)
		os.Exit(1)
	}
}
