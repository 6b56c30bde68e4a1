package main

import "github.com/Egor213/TerraTrack/internal/app"

func main() {
	app.Run()
}
