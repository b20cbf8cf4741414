// Package docs embeds the documentation topics printed by "sk topic".
//
// Each topic is a markdown file. Its fenced blocks tagged "bash setup",
// "bash run", "bash check", "console check" or "files check" are run as
// scenarios by the tests of this package, so examples stay true.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the default topic, it lists the others.
const Readme = "readme"

// All stands for the readme followed by every other topic.
const All = "*"

// Topic returns the markdown content of a topic.
func Topic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see \"sk topic %s\"", name, Readme)
	}
	return string(content), nil
}

// Topics returns the names of the topics but the readme, sorted.
func Topics() []string {
	names, _ := fs.Glob(files, "*.md") // the pattern is valid
	var topics []string
	for _, n := range names {
		if n = strings.TrimSuffix(n, ".md"); n != Readme {
			topics = append(topics, n)
		}
	}
	slices.Sort(topics)
	return topics
}

// Title returns the first heading of a topic, or its name if it has none.
func Title(name string) string {
	content, err := Topic(name)
	if err != nil {
		return name
	}
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		if title, ok := strings.CutPrefix(sc.Text(), "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return name
}

// Render concatenates the given topics into a single document.
func Render(names ...string) (string, error) {
	var expanded []string
	for _, n := range names {
		if n == All {
			expanded = append(expanded, Readme)
			expanded = append(expanded, Topics()...)
			continue
		}
		expanded = append(expanded, n)
	}

	var b strings.Builder
	for i, n := range expanded {
		content, err := Topic(n)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
