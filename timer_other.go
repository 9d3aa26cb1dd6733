//go:build !unix

package callbench

import "errors"

func processTime() (float64, error) {
	return 0, errors.New("process CPU clock not supported on this platform")
}
