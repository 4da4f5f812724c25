// Package qfxparser reads OFX/QFX bank and credit-card statements, in either
// the SGML (OFX 1.x) or XML (OFX 2.x) serialization.
package qfxparser

import (
	"encoding/xml"
	"strings"

	"fjacquet/bank-statement/internal/logging"
	"fjacquet/bank-statement/internal/models"
	"fjacquet/bank-statement/internal/parser"
	"fjacquet/bank-statement/internal/parsererror"
	"fjacquet/bank-statement/internal/xmlutils"
)

const (
	rootOpen  = "<OFX>"
	rootClose = "</OFX>"
)

// Reasons reported in parse errors.
const (
	ReasonMissingRoot    = "missing <OFX> tag"
	ReasonMissingRootEnd = "missing </OFX> tag"
	ReasonXMLParse       = "XML parse error"
	ReasonNoTransactions = "no transaction data found"
)

// Parser is the QFX/OFX statement parser.
type Parser struct {
	parser.BaseParser
}

// NewParser returns a QFX parser logging through logger.
func NewParser(logger logging.Logger) *Parser {
	return &Parser{BaseParser: parser.NewBaseParser(logger)}
}

func (p *Parser) Name() string {
	return string(models.FormatQFX)
}

// IsSupported accepts a .qfx/.ofx filename, or content carrying the OFX
// root tag or one of the SGML header markers.
func (p *Parser) IsSupported(filename, content string) bool {
	if parser.HasExtension(filename, ".qfx", ".ofx") {
		return true
	}
	return HasContentSignature(content)
}

// HasContentSignature reports whether content itself looks like OFX,
// regardless of any filename.
func HasContentSignature(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.Contains(trimmed, rootOpen) ||
		strings.Contains(trimmed, "OFXHEADER:") ||
		strings.Contains(trimmed, "DATA:OFXSGML")
}

// Parse extracts every STMTTRN of the statement. Bank statements win over
// credit-card statements when a document carries both.
func (p *Parser) Parse(content string) ([]models.QfxTransaction, error) {
	doc, err := p.decode(content)
	if err != nil {
		return nil, err
	}

	raw, err := p.selectTransactions(doc)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.QfxTransaction, 0, len(raw))
	for _, r := range raw {
		txn, err := models.NewQfxTransaction(r)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	p.GetLogger().Debug("Parsed QFX statement",
		logging.Field{Key: logging.FieldParser, Value: p.Name()},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// decode normalizes content to XML and unmarshals the <OFX> element.
func (p *Parser) decode(content string) (models.OfxDocument, error) {
	body, err := ExtractOFX(content)
	if err != nil {
		return models.OfxDocument{}, err
	}

	var doc models.OfxDocument
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return models.OfxDocument{}, parsererror.NewParseError(p.Name(), ReasonXMLParse, err)
	}
	return doc, nil
}

func (p *Parser) selectTransactions(doc models.OfxDocument) ([]models.RawTransaction, error) {
	switch {
	case doc.BankMessages != nil:
		if doc.CreditCardMessages != nil {
			p.GetLogger().Warn("Statement has both bank and credit card messages, using bank transactions only",
				logging.Field{Key: logging.FieldParser, Value: p.Name()})
		}
		return doc.BankMessages.TransactionResponse.Statement.TransactionList.Transactions, nil
	case doc.CreditCardMessages != nil:
		return doc.CreditCardMessages.TransactionResponse.Statement.TransactionList.Transactions, nil
	}
	return nil, parsererror.NewParseError(p.Name(), ReasonNoTransactions, nil)
}

// ExtractOFX converts SGML content to XML when needed and returns the
// slice from the first <OFX> through the first </OFX>, both included.
func ExtractOFX(content string) (string, error) {
	xmlContent := content
	if !xmlutils.IsXML(content) {
		xmlContent = xmlutils.NormalizeSGML(content)
	}

	start := strings.Index(xmlContent, rootOpen)
	if start < 0 {
		return "", parsererror.NewParseError(string(models.FormatQFX), ReasonMissingRoot, nil)
	}
	end := strings.Index(xmlContent, rootClose)
	if end < start {
		return "", parsererror.NewParseError(string(models.FormatQFX), ReasonMissingRootEnd, nil)
	}
	return xmlContent[start : end+len(rootClose)], nil
}
