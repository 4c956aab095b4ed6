package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Bitlatte/showcase/internal/drafts"
	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/model"
)

// Printer writes human-readable output, coloured unless NO_COLOR is set
// or colours are disabled.
type Printer struct {
	out       io.Writer
	useColors bool
}

func NewPrinter(out io.Writer, useColors bool) *Printer {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	return &Printer{out: out, useColors: useColors}
}

func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "✓ "+format+"\n", args...)
}

func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.Bold).Fprintf(p.out, "%s\n", title)
		return
	}
	fmt.Fprintf(p.out, "%s\n", title)
}

func (p *Printer) faint(s string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(s)
	}
	return s
}

// Listing prints the visible window of res as a table followed by a
// summary line.
func (p *Printer) Listing(res listing.Result) error {
	t := NewTable(p.out, []string{"Type", "Slug", "Title", "Date", "Tags"})
	for _, item := range res.Visible {
		t.AddRow([]string{string(item.Kind), item.Slug, item.Title, model.FormatDate(item.Date), strings.Join(item.Tags, ", ")})
	}
	if err := t.Render(); err != nil {
		return err
	}
	if res.Total == 0 {
		fmt.Fprintln(p.out, "No results. Try adjusting your filters.")
		return nil
	}
	summary := fmt.Sprintf("showing %d of %d", len(res.Visible), res.Total)
	if res.HasMore {
		summary += fmt.Sprintf(" (use --visible %d for more)", res.State.Visible+listing.PageSize)
	}
	fmt.Fprintln(p.out, p.faint(summary))
	return nil
}

// Drafts prints the draft list.
func (p *Printer) Drafts(list []drafts.Draft) error {
	if len(list) == 0 {
		fmt.Fprintln(p.out, "No drafts yet. Create your first blog post.")
		return nil
	}
	t := NewTable(p.out, []string{"Slug", "Title", "Date", "Tags"})
	for _, d := range list {
		title := d.Title
		if title == "" {
			title = d.Slug
		}
		tags := d.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		t.AddRow([]string{d.Slug, title, d.Date, strings.Join(tags, ", ")})
	}
	return t.Render()
}
