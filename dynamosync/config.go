package dynamosync

// Config holds configuration for the Store.
type Config struct {
	// Tables maps a record type name to its DynamoDB table. Types without
	// an entry fall back to TablePrefix + type name.
	Tables map[string]string

	// TablePrefix prefixes table names derived from type names.
	// Default: "weft_"
	TablePrefix string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		TablePrefix: "weft_",
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.TablePrefix == "" {
		c.TablePrefix = "weft_"
	}
}

// tableFor resolves the table holding records of the given type.
func (c *Config) tableFor(typeName string) string {
	if t, ok := c.Tables[typeName]; ok {
		return t
	}
	return c.TablePrefix + typeName
}
