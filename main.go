package main

import "github.com/indrora/lsxattr/cmd"

func main() {
	cmd.Execute()
}
