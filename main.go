package main

import "github.com/kamal-hamza/content-hub/cmd"

func main() {
	cmd.Execute()
}
