package raymarch

import "fmt"

// Handle panics if err is not nil. Use it only for errors that
// indicate a bug, never for failures caused by the environment.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
