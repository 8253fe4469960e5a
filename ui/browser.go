package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"re-savior/ds"
	"re-savior/rsave"
	"re-savior/rsave/rdump"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rhash"
	"re-savior/rsave/rlist"
)

// maxSummaryLength counts runes.
const maxSummaryLength = 60

type (
	// Level is one step of the descent: the nodes shown and the highlighted
	// one.
	Level struct {
		Label  string
		Nodes  []rentry.Node
		Cursor int
	}
	Browser struct {
		registry *rhash.Registry
		levels   *ds.Stack[Level]
		status   string
	}
)

func CreateBrowser(savegame *rsave.Savegame, registry *rhash.Registry) *Browser {
	roots := lo.FlatMap(
		savegame.Lists,
		func(list *rlist.ElementList, _ int) []rentry.Node {
			return list.Entries
		},
	)
	levels := ds.NewStack[Level]()
	levels.Push(Level{Label: "", Nodes: roots})
	return &Browser{
		registry: registry,
		levels:   levels,
	}
}

// Path is the colon separated labels from the root to the current level.
func (b *Browser) Path() string {
	labels := lo.Map(
		b.levels.Items()[1:],
		func(level Level, _ int) string {
			return level.Label
		},
	)
	return strings.Join(labels, ":")
}

func (b *Browser) Selected() (rentry.Node, bool) {
	level := b.levels.Peek()
	if len(level.Nodes) == 0 {
		return nil, false
	}
	return level.Nodes[level.Cursor], true
}

func (b *Browser) move(delta int) {
	b.levels.ReplaceLast(
		func(level Level) Level {
			level.Cursor = lo.Clamp(level.Cursor+delta, 0, max(len(level.Nodes)-1, 0))
			return level
		},
	)
}

func (b *Browser) descend() {
	node, ok := b.Selected()
	if !ok {
		return
	}
	children := rentry.Children(node)
	if len(children) == 0 {
		b.status = rentry.Label(b.registry, node) + " has no children"
		return
	}
	b.levels.Push(Level{Label: rentry.Label(b.registry, node), Nodes: children})
}

func (b *Browser) ascend() {
	if b.levels.Len() > 1 {
		b.levels.Pop()
	}
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	b.status = ""
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		b.move(-1)
	case "down", "j":
		b.move(1)
	case "enter", "right", "l":
		b.descend()
	case "backspace", "left", "h":
		b.ascend()
	}
	return b, nil
}

func (b *Browser) View() string {
	output := "RE SAVIOR\n\n"
	output += "Path: " + b.Path() + "\n\n"

	level := b.levels.Peek()
	if len(level.Nodes) == 0 {
		output += "  (empty)\n"
	}
	for i, node := range level.Nodes {
		marker := "  "
		if i == level.Cursor {
			marker = "> "
		}
		output += marker + rentry.Label(b.registry, node) + "  " + b.summary(node) + "\n"
	}

	output += "\n"
	if b.status != "" {
		output += b.status + "\n"
	}
	output += "enter: open  backspace: back  q: quit\n"
	return output
}

func (b *Browser) summary(node rentry.Node) string {
	switch n := node.(type) {
	case *rentry.StructEntry:
		return fmt.Sprintf("{%d fields}", len(n.Fields))
	case *rentry.ArrayEntry:
		return fmt.Sprintf("[%d]", len(n.Elements))
	}
	text := ds.DumpJSON(rdump.Project(b.registry, node))
	if runes := []rune(text); len(runes) > maxSummaryLength {
		text = string(runes[:maxSummaryLength]) + "..."
	}
	return text
}
