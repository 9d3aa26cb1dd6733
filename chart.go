package callbench

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders samples as an HTML line chart, iteration index against
// duration, with the average marked.
func WriteChart(w io.Writer, title string, samples Samples) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d iterations, %d entry calls each", len(samples), EntryCalls),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)

	xs := make([]int, len(samples))
	points := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xs[i] = i
		points[i] = opts.LineData{Value: s}
	}

	line.SetXAxis(xs).AddSeries("duration", points,
		charts.WithMarkLineNameTypeItemOpts(opts.MarkLineNameTypeItem{Name: "average", Type: "average"}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
