package models

// ParsedTransaction is a record produced by one format parser, before date
// resolution. Only QfxTransaction and CsvTransaction implement it; switch on
// the concrete type to read the fields.
type ParsedTransaction interface {
	// Format is the format whose parser produced the record.
	Format() FileFormat
	sealed()
}

func (QfxTransaction) Format() FileFormat { return FormatQFX }
func (QfxTransaction) sealed()            {}

func (CsvTransaction) Format() FileFormat { return FormatCSV }
func (CsvTransaction) sealed()            {}
