package main

import "github.com/edea-dev/msweb/cmd/msweb/cmd"

func main() {
	cmd.Execute()
}
