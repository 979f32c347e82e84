package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"

	"soulsync.dev/soulsync/pkg/bucket"
	"soulsync.dev/soulsync/pkg/media"
	"soulsync.dev/soulsync/pkg/settings"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("0191f29e-1f4a-7c2e-9a71-0242ac120002  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// BucketList prints items with a completion glyph and the description
// wrapped and dimmed beneath the title.
func (pp *PrettyPrint) BucketList(items ...bucket.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	g := color.New(color.FgGreen)
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, item := range items {
		if pp.ShowID {
			_, _ = y.Print(item.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(item.ID)))
		}
		if item.Completed {
			_, _ = g.Print("✔ ")
		} else {
			_, _ = t.Print("○ ")
		}
		_, _ = t.Println(item.Title)
		if item.Description != "" {
			for _, line := range strings.Split(wordwrap.String(item.Description, 70), "\n") {
				if pp.ShowID {
					_, _ = d.Print(spacing)
				}
				_, _ = d.Printf("  %s\n", line)
			}
		}
	}
	_, _ = t.Println("")
}

// Gallery prints the media library as a table.
func (pp *PrettyPrint) Gallery(items ...media.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.AddRow(bold("Kind"), bold("URI"))
	for _, item := range items {
		tbl.AddRow(string(item.Kind), item.URI)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Settings prints the current tunables as a table.
func (pp *PrettyPrint) Settings(cfg settings.Settings) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Setting"), bold("Value"))
	tbl.AddRow("numberOfStars", fmt.Sprintf("%d", cfg.NumberOfStars))
	tbl.AddRow("longPressDuration", fmt.Sprintf("%d ms", cfg.LongPressDuration))
	tbl.AddRow("numberOfMediaItems", fmt.Sprintf("%d", cfg.NumberOfMediaItems))
	tbl.AddRow("useDynamicBackground", fmt.Sprintf("%t", cfg.UseDynamicBackground))
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Progress rewrites a single upload progress line. When stdout is not a
// terminal only the final percentage is printed.
func (pp *PrettyPrint) Progress(name string, pct int) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		if pct >= 100 {
			fmt.Printf("%s 100%%\n", name)
		}
		return
	}
	d := color.New(color.Faint)
	_, _ = d.Printf("\r%s %3d%%", name, pct)
	if pct >= 100 {
		fmt.Println("")
	}
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
