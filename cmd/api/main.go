package main

import "github.com/personalvault/synapse-api/internal/app"

func main() {
	app.Run()
}
