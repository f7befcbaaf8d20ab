package main

import "github.com/SHOSESHOSE/time-tracker/cmd"

func main() {
	cmd.Execute()
}
