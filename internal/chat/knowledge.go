package chat

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

// Topic is one canned answer keyed by a lower-case keyword.
type Topic struct {
	Keyword   string   `yaml:"keyword"`
	Sentences []string `yaml:"sentences"`
}

// Answer returns the topic sentences joined into one text.
func (t Topic) Answer() string {
	return strings.Join(t.Sentences, "")
}

// KnowledgeBase is an ordered list of topics. Order decides which topic
// wins when a question contains several keywords.
type KnowledgeBase struct {
	Topics []Topic `yaml:"topics"`
}

var ErrEmptyKnowledgeBase = errors.New("knowledge base has no topics")

// DefaultKnowledgeBase returns the embedded knowledge base.
func DefaultKnowledgeBase() (*KnowledgeBase, error) {
	return ParseKnowledgeBase(defaultKnowledge)
}

// LoadKnowledgeBase reads a YAML knowledge base from path. An empty path
// yields the embedded one.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	if path == "" {
		return DefaultKnowledgeBase()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	return ParseKnowledgeBase(data)
}

func ParseKnowledgeBase(data []byte) (*KnowledgeBase, error) {
	var kb KnowledgeBase
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	if len(kb.Topics) == 0 {
		return nil, ErrEmptyKnowledgeBase
	}
	for i, t := range kb.Topics {
		kw := strings.ToLower(strings.TrimSpace(t.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("topic %d: empty keyword", i)
		}
		if len(t.Sentences) == 0 {
			return nil, fmt.Errorf("topic %q: no sentences", kw)
		}
		kb.Topics[i].Keyword = kw
	}
	return &kb, nil
}

// Lookup returns the first topic whose keyword occurs in the lower-cased text.
func (kb *KnowledgeBase) Lookup(lower string) (Topic, bool) {
	for _, t := range kb.Topics {
		if strings.Contains(lower, t.Keyword) {
			return t, true
		}
	}
	return Topic{}, false
}
