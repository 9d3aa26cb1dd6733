package callbench

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// GeometricMean returns the n-th root of the product of the samples.
//
// It is computed as exp(mean(ln x)); the direct product of a thousand
// millisecond timings underflows to zero.
func GeometricMean(samples Samples) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("%w: geometric mean of an empty sample set", ErrDomain)
	}

	var logSum float64
	for i, s := range samples {
		if !(s > 0) {
			return 0, fmt.Errorf("%w: geometric mean requires positive values, sample %d is %v", ErrDomain, i, s)
		}
		logSum += math.Log(s)
	}
	return math.Exp(logSum / float64(len(samples))), nil
}

// Report writes the samples to w, one value per line. With takeGeoMean it
// writes only their geometric mean; on a domain error nothing is written.
func Report(w io.Writer, samples Samples, takeGeoMean bool) error {
	bw := bufio.NewWriter(w)

	if takeGeoMean {
		gm, err := GeometricMean(samples)
		if err != nil {
			return err
		}
		writeSample(bw, gm)
	} else {
		for _, s := range samples {
			writeSample(bw, s)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeSample(w *bufio.Writer, v float64) {
	w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	w.WriteByte('\n')
}
