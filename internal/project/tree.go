// SPDX-License-Identifier: MPL-2.0

package project

import "encoding/xml"

// node is a generic markup tree element. Parsing the whole document into a
// generic tree first, then filtering by ancestry, is what keeps
// browser-history references out of the result: history entries reuse the
// same field vocabulary but never sit inside a device wrapper.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

// parseTree unmarshals a markup document into a generic node tree.
func parseTree(doc []byte) (*node, error) {
	var root node
	if err := xml.Unmarshal(doc, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// attr returns the named attribute's value, if present.
func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// value returns the node's "Value" attribute, the document's convention for
// scalar fields (<PlugName Value="Serum"/>).
func (n *node) value() (string, bool) {
	return n.attr("Value")
}

// findAll walks the subtree rooted at n and collects every element whose
// local name satisfies match.
func (n *node) findAll(match func(string) bool, out *[]*node) {
	for i := range n.Children {
		child := &n.Children[i]
		if match(child.XMLName.Local) {
			*out = append(*out, child)
		}
		child.findAll(match, out)
	}
}

// findFirst returns the first element named name in the subtree rooted at n,
// depth-first.
func (n *node) findFirst(name string) *node {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.findFirst(name); found != nil {
			return found
		}
	}
	return nil
}
