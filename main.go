package main

import "strmsync/cmd"

func main() {
	cmd.Execute()
}
