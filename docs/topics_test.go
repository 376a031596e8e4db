package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test keeps the documentation in sync with itself:
	// 1. Every topic listed in readme.md can be loaded by `cic topic <name>`.
	// 2. Every .md file in the docs directory (except readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopics_Star(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	for _, want := range []string{"# formula", "# schedules", "# goal"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) missing %q", want)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) = nil error, want error")
	}
}

func TestConsoleBlocksInvokeCic(t *testing.T) {
	// Every `console` code block in the docs must show a cic invocation,
	// so the examples stay runnable as the CLI evolves.
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			source, err := os.ReadFile(topic + ".md")
			if err != nil {
				t.Fatalf("failed to read %s.md: %v", topic, err)
			}

			doc := goldmark.DefaultParser().Parse(text.NewReader(source))
			err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				block, ok := n.(*ast.FencedCodeBlock)
				if !ok || string(block.Language(source)) != "console" {
					return ast.WalkContinue, nil
				}

				var content strings.Builder
				for i := 0; i < block.Lines().Len(); i++ {
					line := block.Lines().At(i)
					content.Write(line.Value(source))
				}
				first := strings.TrimSpace(strings.SplitN(content.String(), "\n", 2)[0])
				if !strings.HasPrefix(first, "$ cic ") {
					t.Errorf("console block in %s.md starts with %q, want a $ cic invocation", topic, first)
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatalf("walking %s.md: %v", topic, err)
			}
		})
	}
}
