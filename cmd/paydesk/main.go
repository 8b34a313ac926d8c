package main

import "paydesk/internal/cli"

func main() {
	cli.Execute()
}
