package cmd

import (
	"strings"
	"testing"
)

func TestTopicList(t *testing.T) {
	got := topicList()
	for _, want := range []string{"| order | Orders |", "| invoice | Invoices |", "| config | Configuration |"} {
		if !strings.Contains(got, want) {
			t.Errorf("topicList() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "| readme |") {
		t.Errorf("topicList() lists the readme:\n%s", got)
	}
}
