package schema

// ColumnType is the closed enumeration of synthesis kinds a column can carry.
// The prompt-to-schema service may additionally emit "text"; anything outside
// the known set falls back to generic token synthesis.
type ColumnType string

const (
	TypeName       ColumnType = "name"
	TypeEmail      ColumnType = "email"
	TypePhone      ColumnType = "phone"
	TypeNumber     ColumnType = "number"
	TypeInteger    ColumnType = "integer"
	TypeFloat      ColumnType = "float"
	TypeDate       ColumnType = "date"
	TypeBoolean    ColumnType = "boolean"
	TypeAddress    ColumnType = "address"
	TypeCity       ColumnType = "city"
	TypeCountry    ColumnType = "country"
	TypeCompany    ColumnType = "company"
	TypeDepartment ColumnType = "department"
	TypeJobTitle   ColumnType = "jobTitle"
	TypeCurrency   ColumnType = "currency"
	TypeUUID       ColumnType = "uuid"
	TypeCustom     ColumnType = "custom"
	TypeText       ColumnType = "text"
)

// IsNumeric reports whether values of this type participate in numeric
// summary statistics.
func (t ColumnType) IsNumeric() bool {
	return t == TypeNumber || t == TypeInteger || t == TypeFloat
}

// HasBounds reports whether min/max options apply to this type.
func (t ColumnType) HasBounds() bool {
	return t.IsNumeric() || t == TypeCurrency
}

// Options is the optional per-column configuration bag. All fields are
// optional; absent fields take per-type defaults at synthesis time.
type Options struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Decimals *int     `json:"decimals,omitempty"`
	Prefix   string   `json:"prefix,omitempty"`
	Suffix   string   `json:"suffix,omitempty"`
	Values   []string `json:"values,omitempty"`
	Format   string   `json:"format,omitempty"`
}

// MinOr returns the configured lower bound or the given default.
func (o *Options) MinOr(def float64) float64 {
	if o == nil || o.Min == nil {
		return def
	}
	return *o.Min
}

// MaxOr returns the configured upper bound or the given default.
func (o *Options) MaxOr(def float64) float64 {
	if o == nil || o.Max == nil {
		return def
	}
	return *o.Max
}

// DecimalsOr returns the configured decimal precision or the given default.
func (o *Options) DecimalsOr(def int) int {
	if o == nil || o.Decimals == nil {
		return def
	}
	return *o.Decimals
}

// PrefixOr returns the configured prefix or the given default.
func (o *Options) PrefixOr(def string) string {
	if o == nil || o.Prefix == "" {
		return def
	}
	return o.Prefix
}

// SuffixOr returns the configured suffix or the given default.
func (o *Options) SuffixOr(def string) string {
	if o == nil || o.Suffix == "" {
		return def
	}
	return o.Suffix
}

// FormatOr returns the configured output layout or the given default.
func (o *Options) FormatOr(def string) string {
	if o == nil || o.Format == "" {
		return def
	}
	return o.Format
}

// Column describes one field of a dataset schema: a stable identifier, the
// display name used as the row key, the semantic type, and generation options.
type Column struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Type    ColumnType `json:"type"`
	Options *Options   `json:"options,omitempty"`
}

// Names returns the display names of the columns in schema order.
func Names(columns []Column) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}
