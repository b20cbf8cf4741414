package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/shopkeeper/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `sk topic [-l] [<topic>...]

  Shows the documentation topics, the readme by default, or all of them with "*".
  -l lists the topics with their titles.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the topics.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		printMarkdown(topicList())
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}
	doc, err := docs.Render(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicList is the markdown table of topics and titles.
func topicList() string {
	var b strings.Builder
	b.WriteString("| Topic | Title |\n|:--|:--|\n")
	for _, t := range docs.Topics() {
		fmt.Fprintf(&b, "| %s | %s |\n", t, docs.Title(t))
	}
	return b.String()
}
