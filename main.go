package main

import "feature-catalog/cmd"

func main() {
	cmd.Execute()
}
