package constants

const (
	FormatBinary = "binary"
	FormatText   = "text"
	FormatYAML   = "yaml"

	DefaultBinaryBackup = "backup.bin"
	DefaultTextBackup   = "backup.txt"
	DefaultYAMLExport   = "backup.yaml"

	// Text snapshot layout
	TextSectionSeparator = "---"
	TextFieldSeparator   = " | "
	TextFieldCount       = 4
)
