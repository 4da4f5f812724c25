package qfxparser

import (
	"strings"

	"fjacquet/bank-statement/internal/logging"

	"github.com/aclindsa/ofxgo"
)

// ValidateFormat runs a strict OFX conformance check with ofxgo. It is
// stricter than IsSupported and Parse: headers, the sign-on response and
// the statement aggregates must all be well formed. A non-conforming
// document yields false and a nil error.
func (p *Parser) ValidateFormat(content string) (bool, error) {
	resp, err := ofxgo.ParseResponse(strings.NewReader(content))
	if err != nil {
		p.GetLogger().Debug("OFX validation failed",
			logging.Field{Key: logging.FieldParser, Value: p.Name()},
			logging.Field{Key: logging.FieldReason, Value: err.Error()})
		return false, nil
	}

	for _, msg := range resp.Bank {
		if _, ok := msg.(*ofxgo.StatementResponse); ok {
			return true, nil
		}
	}
	for _, msg := range resp.CreditCard {
		if _, ok := msg.(*ofxgo.CCStatementResponse); ok {
			return true, nil
		}
	}

	p.GetLogger().Debug("OFX document has no bank or credit card statement",
		logging.Field{Key: logging.FieldParser, Value: p.Name()})
	return false, nil
}
