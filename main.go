package main

import "furnishing-helper/cmd"

func main() {
	cmd.Execute()
}
