package main

import (
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/sketchdata/pkg/imagedata"
	"github.com/pkg/errors"
)

// summary of an indexed folder dataset.
type summary struct {
	Roots       []string
	Extension   string
	NumSamples  int
	TotalBytes  uint64
	First, Last string
}

func summarize(roots []string, ds *imagedata.FolderDataset[image.Image]) (s summary, err error) {
	s.Roots = roots
	s.Extension = ds.Extension()
	s.NumSamples = ds.Len()
	samples := ds.Samples()
	for _, path := range samples {
		info, statErr := os.Stat(path)
		if statErr != nil {
			err = errors.Wrapf(statErr, "failed to stat sample %q", path)
			return
		}
		s.TotalBytes += uint64(info.Size())
	}
	if len(samples) > 0 {
		s.First = samples[0]
		s.Last = samples[len(samples)-1]
	}
	return
}

var (
	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

func printSummary(s summary) {
	fmt.Println(titleStyle.Render("Dataset"))
	table := newPlainTable()
	for ii, root := range s.Roots {
		table.Row(fmt.Sprintf("root #%d", ii), root)
	}
	table.Row("extension", s.Extension)
	table.Row("# samples", humanize.Comma(int64(s.NumSamples)))
	table.Row("# bytes", humanize.Bytes(s.TotalBytes))
	if s.NumSamples > 0 {
		table.Row("first", s.First)
		table.Row("last", s.Last)
	}
	fmt.Println(table.Render())
}
