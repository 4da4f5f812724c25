// Package xmlutils holds the OFX markup helpers: SGML to XML normalization
// and XPath extraction over normalized documents.
package xmlutils

import (
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// ParseXML parses an XML document into an xmlpath tree.
func ParseXML(content string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// ExtractFromXML returns the text of every node matching xpath.
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, strings.TrimSpace(iter.Node().String()))
	}
	return values, nil
}

// ExtractFirst returns the trimmed text of the first node matching xpath,
// or "" when nothing matches.
func ExtractFirst(root *xmlpath.Node, xpath string) (string, error) {
	values, err := ExtractFromXML(root, xpath)
	if err != nil {
		return "", err
	}
	return GetOrEmpty(values, 0), nil
}

// Exists reports whether xpath matches at least one node.
func Exists(root *xmlpath.Node, xpath string) (bool, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false, fmt.Errorf("failed to compile XPath: %w", err)
	}
	return path.Exists(root), nil
}

// GetOrEmpty returns slice[index], or "" when index is out of range.
func GetOrEmpty(slice []string, index int) string {
	if index >= 0 && index < len(slice) {
		return slice[index]
	}
	return ""
}
