package main

import "cfinvalidate/cmd"

func main() {
	cmd.Execute()
}
