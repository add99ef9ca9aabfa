package main

import (
	"agw-agent/cmd"
)

func main() {
	cmd.Execute()
}
