// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmltree parses an XML document into a navigable node tree.
//
// Game descriptor and config documents are small, so the whole tree is held
// in memory and navigated with short-circuiting lookups: every accessor
// returns an absent marker instead of failing, leaving the default-or-issue
// decision to the caller. Documents declaring legacy single-byte charsets
// (common in older mod descriptors) are transcoded transparently.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Node is one element in a parsed document.
type Node struct {
	// Name is the element's local name, namespace stripped.
	Name string
	// Attrs holds the element's attributes in document order.
	Attrs []xml.Attr
	// Children holds the element's child elements in document order.
	Children []*Node
	// Data is the concatenated character data directly inside the element.
	Data string
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root *Node
	stack := make([]*Node, 0, 8)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attrs: copyAttrs(t.Attr)}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("malformed document: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Data += string(t)
				continue
			}
			// encoding/xml tolerates text outside the root element; the
			// descriptor contract does not.
			if len(strings.TrimSpace(string(t))) > 0 {
				return nil, errors.New("malformed document: text outside root element")
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// ParseBytes parses an in-memory XML document.
func ParseBytes(b []byte) (*Node, error) {
	return Parse(bytes.NewReader(b))
}

// charsetReader transcodes documents whose declaration names a non-UTF-8
// charset, resolved through the WHATWG encoding index.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}

func copyAttrs(attrs []xml.Attr) []xml.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]xml.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// Text returns the element's own character data with surrounding whitespace
// trimmed.
func (n *Node) Text() string {
	return strings.TrimSpace(n.Data)
}

// Attr returns the named attribute's value. The second result is false when
// the attribute is absent.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrInt returns the named attribute parsed as an integer.
func (n *Node) AttrInt(name string) (int, bool) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// AttrUint returns the named attribute parsed as an unsigned integer.
func (n *Node) AttrUint(name string) (uint32, bool) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	u, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(u), true
}

// AttrFloat returns the named attribute parsed as a float.
func (n *Node) AttrFloat(name string) (float64, bool) {
	v, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// AttrBool returns the named attribute parsed as a boolean.
func (n *Node) AttrBool(name string) (bool, bool) {
	v, ok := n.Attr(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

// Child returns the first direct child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct child elements with the given name in
// document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// First returns the first element with the given name in document order,
// searching the node itself and all descendants. Returns nil when absent.
func (n *Node) First(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.First(name); found != nil {
			return found
		}
	}
	return nil
}

// All returns every element with the given name in document order, searching
// the node itself and all descendants.
func (n *Node) All(name string) []*Node {
	var out []*Node
	n.appendAll(name, &out)
	return out
}

func (n *Node) appendAll(name string, out *[]*Node) {
	if n.Name == name {
		*out = append(*out, n)
	}
	for _, c := range n.Children {
		c.appendAll(name, out)
	}
}

// FirstText returns the trimmed text of the first element with the given
// name. The second result is false when no such element exists.
func (n *Node) FirstText(name string) (string, bool) {
	found := n.First(name)
	if found == nil {
		return "", false
	}
	return found.Text(), true
}

// HasChildElements reports whether the node has at least one child element.
func (n *Node) HasChildElements() bool {
	return len(n.Children) > 0
}
