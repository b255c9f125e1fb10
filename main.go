package main

import "github.com/luisfpatrocinio/patro/cmd"

func main() {
	cmd.Execute()
}
