package main

import "github.com/enzopetersen/Laboratorio/internal/cli"

func main() {
	cli.Execute()
}
