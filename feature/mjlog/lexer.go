package mjlog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"match-canon/core/utils"
	"match-canon/feature/canon"
)

var attrPattern = regexp.MustCompile(`^(\w+)="([^"]*)"$`)

// Node is one record of the stream: a name and its attributes.
type Node struct {
	Name  string
	Attrs map[string]string
}

// Tokenize splits content into nodes. Fragments are delimited by '<', '/' and '>';
// empty fragments and processing instructions are dropped, and attributes that are not
// of the form key="value" are ignored.
func Tokenize(content string) []Node {
	var nodes []Node
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '<', '/', '>':
			fragment := content[start:i]
			start = i + 1
			if fragment == "" || strings.HasPrefix(fragment, "?") {
				continue
			}
			if n, ok := parseFragment(fragment); ok {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

func parseFragment(fragment string) (Node, bool) {
	fields := strings.Fields(fragment)
	if len(fields) == 0 {
		return Node{}, false
	}
	n := Node{Name: fields[0]}
	if len(fields) == 1 {
		return n, true
	}
	n.Attrs = make(map[string]string, len(fields)-1)
	for _, f := range fields[1:] {
		if m := attrPattern.FindStringSubmatch(f); m != nil {
			n.Attrs[m[1]] = m[2]
		}
	}
	return n, true
}

// Attr returns the named attribute.
func (n Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// Int returns the named attribute as an integer.
func (n Node) Int(key string) (int, error) {
	v, ok := n.Attrs[key]
	if !ok {
		return 0, fmt.Errorf("<%s> missing %s: %w", n.Name, key, canon.ErrMalformedToken)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("<%s> %s=%q: %w", n.Name, key, v, canon.ErrMalformedToken)
	}
	return i, nil
}

// Ints returns the named comma separated attribute as integers. want < 0 accepts any length.
func (n Node) Ints(key string, want int) ([]int, error) {
	v, ok := n.Attrs[key]
	if !ok {
		return nil, fmt.Errorf("<%s> missing %s: %w", n.Name, key, canon.ErrMalformedToken)
	}
	ints, err := utils.SplitInts(v)
	if err != nil {
		return nil, fmt.Errorf("<%s> %s: %v: %w", n.Name, key, err, canon.ErrMalformedToken)
	}
	if want >= 0 && len(ints) != want {
		return nil, fmt.Errorf("<%s> %s has %d values, want %d: %w", n.Name, key, len(ints), want, canon.ErrMalformedToken)
	}
	return ints, nil
}

// Floats returns the named comma separated attribute as decimals.
func (n Node) Floats(key string, want int) ([]float64, error) {
	v, ok := n.Attrs[key]
	if !ok {
		return nil, fmt.Errorf("<%s> missing %s: %w", n.Name, key, canon.ErrMalformedToken)
	}
	fs, err := utils.SplitFloats(v)
	if err != nil {
		return nil, fmt.Errorf("<%s> %s: %v: %w", n.Name, key, err, canon.ErrMalformedToken)
	}
	if want >= 0 && len(fs) != want {
		return nil, fmt.Errorf("<%s> %s has %d values, want %d: %w", n.Name, key, len(fs), want, canon.ErrMalformedToken)
	}
	return fs, nil
}
