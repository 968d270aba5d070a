package snapshot

// Config holds the parsing policy shared by both export encodings.
type Config struct {
	// DefaultQuantity substitutes a missing or malformed quantity field.
	// The same value applies to both exports of a comparison run to keep
	// the comparison fair.
	DefaultQuantity int `mapstructure:"default_quantity" default:"1"`
}
