package main

import "vfstree/internal/app"

func main() {
	app.Run()
}
