// Package topics adds a topic-based help system to a Cobra CLI. Topics
// are markdown or plain-text files carried in an fs.FS (typically an
// embed.FS compiled into the binary) and surfaced through a "topics"
// command and an extended "help" lookup.
package topics

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help document.
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Manager holds the loaded topics for one application.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load reads every .md and .txt file in fsys into a Manager. The topic
// name is the file name without extension.
func Load(fsys fs.FS, renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: renderer}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, Format: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading help topics: %w", err)
	}
	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns the topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns a topic's content formatted for the terminal.
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Format)
}

// Command returns a "topics" cobra command listing and showing the
// loaded topics.
func (m *Manager) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topics [topic]",
		Short:   "Show extended documentation topics",
		GroupID: "misc",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return m.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if len(m.topics) == 0 {
					cmd.Println("No help topics available.")
					return nil
				}
				cmd.Println("Available topics:")
				for _, name := range m.Names() {
					cmd.Printf("  %s\n", name)
				}
				cmd.Printf("\nUse %q for a topic's contents.\n", cmd.Root().Name()+" topics <name>")
				return nil
			}
			topic, ok := m.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q", args[0])
			}
			cmd.Print(m.Render(topic))
			return nil
		},
	}
	return cmd
}
