package xmlutils

import (
	"strings"
	"unicode"
)

// LeafElements are the OFX scalar elements whose closing tag may be omitted
// in SGML files. NormalizeSGML closes these and nothing else.
var LeafElements = map[string]struct{}{
	"CODE": {}, "SEVERITY": {}, "MESSAGE": {}, "DTSERVER": {}, "LANGUAGE": {},
	"ORG": {}, "FID": {}, "TRNUID": {}, "CURDEF": {}, "BANKID": {},
	"ACCTID": {}, "ACCTTYPE": {}, "DTSTART": {}, "DTEND": {}, "TRNTYPE": {},
	"DTPOSTED": {}, "DTUSER": {}, "TRNAMT": {}, "FITID": {}, "NAME": {},
	"MEMO": {}, "INTU.BID": {}, "DTPROFUP": {}, "DTASOF": {}, "BALAMT": {},
}

// IsLeafElement reports whether name is a registered leaf, ignoring case.
func IsLeafElement(name string) bool {
	_, ok := LeafElements[strings.ToUpper(name)]
	return ok
}

// IsXML reports whether content is an XML-serialized OFX document.
func IsXML(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), "<?xml")
}

// NormalizeSGML rewrites an OFX 1.x SGML document as XML. The SGML header
// before <OFX> is dropped, lines are trimmed, blank lines removed, and every
// leaf element missing its end tag gets one. Container elements are copied
// unchanged. It never fails; malformed input surfaces when the result is
// decoded.
func NormalizeSGML(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	inBody := false
	for _, line := range strings.Split(content, "\n") {
		if !inBody {
			if !strings.Contains(line, "<OFX>") {
				continue
			}
			inBody = true
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out.WriteString(closeLeaf(trimmed))
		out.WriteByte('\n')
	}
	return out.String()
}

// closeLeaf appends the missing end tag to a single trimmed line, or returns
// the line unchanged.
func closeLeaf(line string) string {
	if !strings.HasPrefix(line, "<") || strings.HasPrefix(line, "</") {
		return line
	}

	nameEnd := strings.IndexFunc(line, func(r rune) bool {
		return r == '>' || unicode.IsSpace(r)
	})
	if nameEnd < 0 {
		nameEnd = len(line)
	}
	name := line[1:nameEnd]
	if !IsLeafElement(name) {
		return line
	}

	gt := strings.IndexByte(line, '>')
	if gt < 0 {
		return line
	}
	afterTag := line[gt+1:]
	closing := "</" + name + ">"
	if strings.Contains(afterTag, closing) {
		return line
	}

	contentEnd := strings.Index(afterTag, "</")
	if contentEnd < 0 {
		contentEnd = len(afterTag)
	}
	text := strings.TrimSpace(afterTag[:contentEnd])
	trailing := afterTag[contentEnd:]

	return line[:gt+1] + text + closing + trailing
}
