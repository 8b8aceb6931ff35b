package dashboard

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/swdee/go-annodash"
	"github.com/swdee/go-annodash/stats"
	"io"
	"text/tabwriter"
)

// SummaryPanel writes the dataset statistics as text
type SummaryPanel struct {
	w io.Writer
}

// NewSummaryPanel returns a panel writing to w
func NewSummaryPanel(w io.Writer) *SummaryPanel {
	return &SummaryPanel{w: w}
}

func (p *SummaryPanel) Name() string {
	return "summary"
}

// Refresh writes the summary of ds
func (p *SummaryPanel) Refresh(ds *annodash.DetectionDataset) error {

	images, err := ds.ImageCount()

	if err != nil {
		return err
	}

	objects, err := ds.ObjectCount()

	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)

	name := ds.Name.String()

	if name == "" {
		name = "dataset"
	}

	fmt.Fprintf(tw, "%s\n", name)

	if desc, ok := ds.Description.Get(); ok {
		fmt.Fprintf(tw, "%s\n", desc)
	}

	fmt.Fprintf(tw, "images:\t%s\n", humanize.Comma(int64(images)))
	fmt.Fprintf(tw, "objects:\t%s\n", humanize.Comma(int64(objects)))

	span, err := ds.DateRange()

	switch {
	case err == nil:
		fmt.Fprintf(tw, "dates:\t%s to %s\n", span.Min.Format("2006-01-02"),
			span.Max.Format("2006-01-02"))
	case !errors.Is(err, stats.ErrNoData):
		return err
	}

	if objects == 0 {
		return tw.Flush()
	}

	per, err := ds.ObjectsPerImage()

	if err != nil {
		return err
	}

	fmt.Fprintf(tw, "objects per image:\tmean %.2f\tmax %s\n", per.Mean,
		humanize.Comma(int64(per.Max)))

	boxes, err := ds.BoxStats()

	if err != nil {
		return err
	}

	fmt.Fprintf(tw, "box width:\tmean %.1f\tstd %.1f\n", boxes.Width.Mean, boxes.Width.Std)
	fmt.Fprintf(tw, "box height:\tmean %.1f\tstd %.1f\n", boxes.Height.Mean, boxes.Height.Std)
	fmt.Fprintf(tw, "box area:\tmedian %s\n", humanize.Comma(int64(boxes.Area.Median)))

	counts, err := ds.ClassCounts()

	if err != nil {
		return err
	}

	fmt.Fprintf(tw, "\nclass\tobjects\timages\n")

	for _, cc := range counts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", cc.Label, humanize.Comma(int64(cc.Objects)),
			humanize.Comma(int64(cc.Images)))
	}

	return tw.Flush()
}
