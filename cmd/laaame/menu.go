package main

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/lixenwraith/laaame/difficulty"
	"github.com/lixenwraith/laaame/engine"
)

// menuItem is one tier row of the start menu
type menuItem struct {
	Tier   string
	Label  string
	Detail string
	Locked bool
}

// menuItems lists every tier in order with its unlock state and best score
func menuItems(p engine.Progress, tiers difficulty.Table) []menuItem {
	items := make([]menuItem, 0, len(tiers))
	for _, t := range tiers {
		it := menuItem{Tier: t.Name, Label: t.Label}
		if p.IsUnlocked(t.Name) {
			it.Detail = fmt.Sprintf("target %d  best %d", t.Target, p.Best[t.Name])
		} else {
			it.Locked = true
			it.Label += " (locked)"
			it.Detail = "win the previous tier to unlock"
		}
		items = append(items, it)
	}
	return items
}

// lastUnlocked returns the index of the hardest playable item
func lastUnlocked(items []menuItem) int {
	idx := 0
	for i, it := range items {
		if !it.Locked {
			idx = i
		}
	}
	return idx
}

// runMenu shows the tier list and returns the chosen tier; empty means quit
func runMenu(items []menuItem, voice bool) (string, error) {
	app := tview.NewApplication()
	list := tview.NewList()

	title := " LAAAME "
	if voice {
		title = " LAAAME · voice "
	}
	list.SetBorder(true).SetTitle(title)

	var chosen string
	for i, it := range items {
		list.AddItem(it.Label, it.Detail, rune('1'+i), func() {
			if it.Locked {
				return
			}
			chosen = it.Tier
			app.Stop()
		})
	}
	list.AddItem("Quit", "", 'q', app.Stop)
	list.SetCurrentItem(lastUnlocked(items))

	if err := app.SetRoot(list, true).Run(); err != nil {
		return "", fmt.Errorf("menu: %w", err)
	}
	return chosen, nil
}
