package railfile

// metadataKeywords is the closed set of header-field names used by the rail
// report format. A line whose first token is one of these carries metadata,
// not instance data, and is skipped by the parser. The list must match the
// vocabulary emitted by the upstream report generators exactly.
var metadataKeywords = map[string]struct{}{
	"VERSION":         {},
	"CREATION":        {},
	"CREATOR":         {},
	"PROGRAM":         {},
	"DIVIDERCHAR":     {},
	"DESIGN":          {},
	"UNITS":           {},
	"INSTANCE_COUNT":  {},
	"NOMINAL_VOLTAGE": {},
	"POWER_NET":       {},
	"GROUND_NET":      {},
	"WINDOW":          {},
	"RP_VALUE":        {},
	"RP_FORMAT":       {},
	"RP_INST_LIMIT":   {},
	"RP_THRESHOLD":    {},
	"RP_PIN_NAME":     {},
	"MICRON_UNITS":    {},
	"INST_NAME":       {},
}

// IsMetadataKeyword reports whether token is a reserved header-field name.
func IsMetadataKeyword(token string) bool {
	_, ok := metadataKeywords[token]
	return ok
}
