//go:build unix

package callbench

import "golang.org/x/sys/unix"

// processTime returns user plus system CPU time consumed by this process.
func processTime() (float64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return timevalSeconds(&ru.Utime) + timevalSeconds(&ru.Stime), nil
}

func timevalSeconds(tv *unix.Timeval) float64 {
	sec, nsec := tv.Unix()
	return float64(sec) + float64(nsec)/1e9
}
