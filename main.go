package main

import "github.com/killallgit/podcast-backup/cmd"

func main() {
	cmd.Execute()
}
