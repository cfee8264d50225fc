package model

import (
	"strconv"
	"strings"
)

// Chart types.
const (
	ChartBar  = "bar"
	ChartLine = "line"
	ChartPie  = "pie"
	ChartArea = "area"
)

// Series is one data series of a chart.
type Series struct {
	Name       string
	Categories []string
	Values     []float64
}

// Chart is a data chart. Only its data is modelled; rendering is left to
// the consumer.
type Chart struct {
	Graphic
	Title     string
	ChartType string
	series    []Series
}

// NewChart returns an empty bar chart.
func NewChart() *Chart {
	return &Chart{Graphic: newGraphic(), ChartType: ChartBar}
}

func (c *Chart) Kind() Kind { return KindChart }

// Series returns the data series in order.
func (c *Chart) Series() []Series { return c.series }

// AddSeries appends a data series.
func (c *Chart) AddSeries(s Series) { c.series = append(c.series, s) }

// PlainText renders the chart data as lines of "series: category=value".
func (c *Chart) PlainText() string {
	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(c.Title)
		sb.WriteByte('\n')
	}
	for _, s := range c.series {
		sb.WriteString(s.Name)
		sb.WriteByte(':')
		for i, v := range s.Values {
			sb.WriteByte(' ')
			if i < len(s.Categories) {
				sb.WriteString(s.Categories[i])
				sb.WriteByte('=')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (c *Chart) HashCode() string {
	parts := append(c.Graphic.hashParts(), c.Title, c.ChartType)
	for _, s := range c.series {
		parts = append(parts, s.Name, strings.Join(s.Categories, "\x00"))
		for _, v := range s.Values {
			parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return hashOf(append(parts, "model.Chart")...)
}
