// Where: cmd/argonaut/main.go
// What: CLI entrypoint.
// Why: Run the interactive session with configured dependencies.
package main

import (
	"os"

	"github.com/argonaut-cli/argonaut/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
