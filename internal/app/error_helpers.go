// Where: internal/app/error_helpers.go
// What: Shared error-to-exit-code helpers.
// Why: Keep the exit policy in one place.
package app

import (
	"fmt"
	"io"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
