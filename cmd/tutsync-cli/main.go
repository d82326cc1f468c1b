package main

import "tutsync/cmd/tutsync-cli/cmd"

func main() {
	cmd.Execute()
}
