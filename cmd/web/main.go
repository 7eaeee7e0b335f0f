package main

import "chefbazaar_backend/internal/app"

func main() {
	app.Run()
}
