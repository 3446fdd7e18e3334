package tuple

import "fmt"

func outOfRange(i, n int) string {
	return fmt.Sprintf("tuple index %d out of range [0:%d]", i, n)
}
