package main

import "github.com/nsxzhou1114/conduit-api/cmd"

func main() {
	cmd.Execute()
}
