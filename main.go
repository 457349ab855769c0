package main

import "github.com/kevindurb/datadir-picker/cmd"

func main() {
	cmd.Execute()
}
