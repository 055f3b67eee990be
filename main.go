package main

import "github.com/beanbocchi/ossclient/cmd"

func main() {
	cmd.Execute()
}
