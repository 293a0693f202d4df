package main

import "github.com/Mohsinsiddi/w3worker/cmd"

func main() {
	cmd.Execute()
}
