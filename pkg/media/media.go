// Package media turns a flat list of media assets into display rows and
// mediates selection-mode interaction with the resulting grid.
package media

// Kind says how an asset is rendered.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Item is a single displayable asset. URI identifies it everywhere,
// including in selections and delete calls.
type Item struct {
	URI  string
	Kind Kind
}

// Row is one display row of one to three items.
type Row []Item

// Flatten concatenates rows back into a single sequence, row order then
// within-row order.
func Flatten(rows []Row) []Item {
	var items []Item
	for _, row := range rows {
		items = append(items, row...)
	}
	return items
}
