// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"fmt"

	"github.com/absmach/dataprotection/pkg/errors"
	"github.com/beevik/etree"
)

// Document is an immutable well-formed XML document with exactly one root
// element. The zero value is an empty document that cannot be stored.
type Document struct {
	root *etree.Element
	xml  string
}

// ParseDocument parses raw as a single-rooted XML document. The XML
// declaration, top-level comments and processing instructions are dropped,
// as is whitespace-only text between elements. Comments, processing
// instructions and whitespace may follow the root element.
func ParseDocument(raw string) (Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return Document{}, errors.Wrap(ErrInvalidXML, err)
	}

	var root *etree.Element
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if root != nil {
				return Document{}, errors.Wrap(ErrInvalidXML, fmt.Errorf("multiple root elements <%s> and <%s>", root.FullTag(), t.FullTag()))
			}
			root = t
		case *etree.CharData:
			if !t.IsWhitespace() {
				return Document{}, errors.Wrap(ErrInvalidXML, fmt.Errorf("text %q outside of the root element", t.Data))
			}
		}
	}
	if root == nil {
		return Document{}, errors.Wrap(ErrInvalidXML, fmt.Errorf("no root element"))
	}

	return NewDocument(root)
}

// NewDocument builds a Document from a copy of root and its descendants.
func NewDocument(root *etree.Element) (Document, error) {
	if root == nil {
		return Document{}, errors.Wrap(ErrInvalidXML, fmt.Errorf("no root element"))
	}

	el := root.Copy()
	stripWhitespace(el)

	doc := etree.NewDocument()
	// Line breaks and tabs are written as character references so readers
	// that normalize line endings get the same text back.
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return Document{}, errors.Wrap(ErrInvalidXML, err)
	}

	return Document{root: el, xml: s}, nil
}

// String returns the canonical compact serialization of the document.
func (d Document) String() string {
	return d.xml
}

// Element returns a deep copy of the root element.
func (d Document) Element() *etree.Element {
	if d.root == nil {
		return nil
	}
	return d.root.Copy()
}

// Name returns the tag of the root element, including its namespace prefix.
func (d Document) Name() string {
	if d.root == nil {
		return ""
	}
	return d.root.FullTag()
}

// Attr returns the value of the named attribute of the root element.
func (d Document) Attr(name string) (string, bool) {
	if d.root == nil {
		return "", false
	}
	a := d.root.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Equal reports whether both documents have the same canonical form.
func (d Document) Equal(other Document) bool {
	return d.xml == other.xml
}

// IsZero reports whether d is the empty document.
func (d Document) IsZero() bool {
	return d.root == nil
}

// stripWhitespace drops insignificant whitespace-only text nodes.
func stripWhitespace(el *etree.Element) {
	for i := len(el.Child) - 1; i >= 0; i-- {
		switch t := el.Child[i].(type) {
		case *etree.CharData:
			if !t.IsCData() && t.IsWhitespace() {
				el.RemoveChildAt(i)
			}
		case *etree.Element:
			stripWhitespace(t)
		}
	}
}
