package main

import "randarray/cmd"

func main() {
	cmd.Execute()
}
