// cmd/rnashapes/main.go
package main

import (
	"rnashapes/internal/app"
	"rnashapes/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
