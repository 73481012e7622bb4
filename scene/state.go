// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bufio"
	"io"
	"os"
	"slices"

	"cogentcore.org/scroll/base/errors"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Saver is a node with persistent state, such as a scroll view
// saving its relative position.
type Saver interface {

	// Save returns the state of the node as an untyped value tree
	// of maps, slices, strings, numbers and bools.
	Save() any

	// Load restores the state of the node from a value returned by Save,
	// possibly after a round trip through a file.
	Load(v any)
}

// rootKey is the state key of the root node itself.
const rootKey = "."

// SaveState returns the state of every [Saver] node under root,
// keyed by path from root.
func SaveState(root Node) map[string]any {
	state := map[string]any{}
	rb := root.AsNode()
	rb.WalkDown(func(n Node) bool {
		if s, ok := n.(Saver); ok {
			key := n.AsNode().PathFrom(rb.This)
			if key == "" {
				key = rootKey
			}
			state[key] = s.Save()
		}
		return Continue
	})
	return state
}

// LoadState restores the state of the [Saver] nodes under root.
// Paths that do not exist anymore are ignored.
func LoadState(root Node, state map[string]any) {
	rb := root.AsNode()
	for key, v := range state {
		n := rb.This
		if key != rootKey {
			n = rb.FindPath(key)
		}
		if s, ok := n.(Saver); ok {
			s.Load(v)
		}
	}
}

// WriteState writes the given state as YAML, with sorted keys.
func WriteState(w io.Writer, state map[string]any) error {
	keys := maps.Keys(state)
	slices.Sort(keys)
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		vn := &yaml.Node{}
		if err := vn.Encode(state[k]); err != nil {
			return err
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ReadState reads a state written by [WriteState].
func ReadState(r io.Reader) (map[string]any, error) {
	state := map[string]any{}
	err := yaml.NewDecoder(r).Decode(&state)
	if errors.Is(err, io.EOF) {
		return state, nil
	}
	return state, err
}

// SaveStateFile saves the state of the nodes under root to the given file.
func SaveStateFile(root Node, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := WriteState(bw, SaveState(root)); err != nil {
		return err
	}
	return bw.Flush()
}

// OpenStateFile restores the state of the nodes under root from the
// given file.
func OpenStateFile(root Node, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	state, err := ReadState(bufio.NewReader(fp))
	if err != nil {
		return err
	}
	LoadState(root, state)
	return nil
}
