package main

import (
	"log"
	stdos "os"
)

func main() {
	defer func() {
		stdos.Exit(3)
	}()

	if len(stdos.Args) > 5 {
		log.Fatal("too many arguments") // want `вызов log.Fatal в функции main запрещён`
	}
	stdos.Exit(1) // want `вызов os.Exit в функции main запрещён`
}

func shutdown() {
	stdos.Exit(2)
}
