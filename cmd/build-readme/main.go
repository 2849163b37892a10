package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"text/template"

	_ "github.com/keshon/raid-herald/internal/command/core"
	_ "github.com/keshon/raid-herald/internal/command/events"
	_ "github.com/keshon/raid-herald/internal/command/raid"
	_ "github.com/keshon/raid-herald/internal/command/settings"
	_ "github.com/keshon/raid-herald/internal/command/susa"

	"github.com/keshon/raid-herald/internal/command"
	"github.com/keshon/raid-herald/internal/config"
)

type CmdInfo struct {
	Name        string
	Description string
	Category    string
	Group       string
}

func main() {
	sections := make(map[string][]CmdInfo)
	for _, c := range command.AllCommands() {
		name := "/" + c.Name()
		if c.SlashDefinition() == nil && c.ContextDefinition() == nil {
			name = "!" + c.Name()
		}
		info := CmdInfo{
			Name:        name,
			Description: c.Description(),
			Category:    c.Category(),
			Group:       c.Group(),
		}
		sections[info.Category] = append(sections[info.Category], info)
	}

	for _, cmds := range sections {
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	}

	var cats []string
	for cat := range sections {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		wi, wj := config.CategoryWeights[cats[i]], config.CategoryWeights[cats[j]]
		if wi != wj {
			return wi < wj
		}
		return cats[i] < cats[j]
	})

	tmplData, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		panic(err)
	}

	tmpl, err := template.New("readme").Parse(string(tmplData))
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	for _, cat := range cats {
		fmt.Fprintf(&buf, "### %s\n\n", cat)
		for _, c := range sections[cat] {
			fmt.Fprintf(&buf, "* **`%s`**\n  %s\n\n", c.Name, c.Description)
		}
	}

	data := map[string]any{
		"CommandSections": buf.String(),
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		panic(err)
	}

	if err := os.WriteFile("README.md", out.Bytes(), 0644); err != nil {
		panic(err)
	}
}
