package logging

// Field names shared by every component so log output stays greppable.
const (
	FieldFile       = "file_path"
	FieldParser     = "parser"
	FieldFormat     = "format"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRequestID  = "request_id"
	FieldIndex      = "index"
)
