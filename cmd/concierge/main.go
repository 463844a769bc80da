package main

import "github.com/foodiespot/concierge/internal/app"

func main() {
	err := app.NewConciergeApp().Run()
	if err != nil {
		panic(err)
	}
}
