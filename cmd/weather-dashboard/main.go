package main

import (
	"context"
	"fmt"
	"os"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Drives a weather dashboard: searches a city, keeps the displayed current weather and forecast, and emits a notification per search.

// @contact.name Weather Dashboard Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Dashboard
// @tag.description Dashboard state and searches
// @tag.name Cities
// @tag.description City autocomplete
func main() {
	if err := RootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
