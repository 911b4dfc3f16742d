package main

import (
	"github.com/vetbase/backend/cmd/app"
)

func main() {
	app.Run()
}
