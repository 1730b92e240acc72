package main

import "github.com/nfrund/sitefront/cmd/sitectl/cmd"

func main() {
	cmd.Execute()
}
