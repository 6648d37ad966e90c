package tray

import (
	"github.com/getlantern/systray"
)

// menuEntry is the part of a systray menu item the tray drives.
type menuEntry interface {
	Check()
	Uncheck()
	Clicked() <-chan struct{}
}

type systrayEntry struct {
	*systray.MenuItem
}

func (e systrayEntry) Clicked() <-chan struct{} {
	return e.ClickedCh
}

// radioGroup keeps exactly one entry of a submenu checked.
type radioGroup[T comparable] struct {
	values  []T
	entries []menuEntry
}

func (g *radioGroup[T]) add(value T, entry menuEntry) {
	g.values = append(g.values, value)
	g.entries = append(g.entries, entry)
}

// Select checks the entry for value and unchecks the others.
func (g *radioGroup[T]) Select(value T) {
	for i, v := range g.values {
		if v == value {
			g.entries[i].Check()
		} else {
			g.entries[i].Uncheck()
		}
	}
}

// listen calls onClick with an entry's value each time it is clicked,
// until done is closed.
func (g *radioGroup[T]) listen(done <-chan struct{}, onClick func(T)) {
	for i := range g.entries {
		value, clicked := g.values[i], g.entries[i].Clicked()
		go func() {
			for {
				select {
				case <-done:
					return
				case <-clicked:
					onClick(value)
				}
			}
		}()
	}
}

// submenu builds a radio submenu with one item per value.
func submenu[T interface {
	comparable
	String() string
}](parent *systray.MenuItem, values []T, selected T) *radioGroup[T] {
	g := &radioGroup[T]{}
	for _, v := range values {
		g.add(v, systrayEntry{parent.AddSubMenuItem(v.String(), "")})
	}
	g.Select(selected)
	return g
}
