// Package chart renders the per-genre distribution of the collection as a
// horizontal bar chart in the terminal.
package chart

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shelfctl/shelf/pkg/books"
)

// maxBarWidth is the widest bar in cells; larger counts are scaled down.
const maxBarWidth = 40

// genreCount pairs a genre label with its record count.
type genreCount struct {
	genre string
	count int
}

// Genres writes one bar per genre, largest first. Records without a genre
// are grouped under "uncategorized".
func Genres(w io.Writer, list []books.Book, noColor bool) error {
	counts := make(map[string]int)
	for i := range list {
		genre := strings.ToLower(strings.TrimSpace(list[i].Genre))
		if genre == "" {
			genre = "uncategorized"
		}
		counts[genre]++
	}
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "No books to chart.")
		return err
	}

	ordered := make([]genreCount, 0, len(counts))
	for genre, count := range counts {
		ordered = append(ordered, genreCount{genre, count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].genre < ordered[j].genre
	})

	labelWidth := 0
	caser := cases.Title(language.English)
	for i := range ordered {
		ordered[i].genre = caser.String(ordered[i].genre)
		if len(ordered[i].genre) > labelWidth {
			labelWidth = len(ordered[i].genre)
		}
	}

	bar := color.New(color.FgCyan)
	if noColor {
		bar.DisableColor()
	}

	max := ordered[0].count
	for _, gc := range ordered {
		width := gc.count
		if max > maxBarWidth {
			width = gc.count * maxBarWidth / max
			if width == 0 {
				width = 1
			}
		}
		_, err := fmt.Fprintf(w, "%-*s %s %d\n",
			labelWidth, gc.genre, bar.Sprint(strings.Repeat("█", width)), gc.count)
		if err != nil {
			return err
		}
	}
	return nil
}
