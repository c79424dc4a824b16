package sound

import (
	"fmt"
	"strings"
)

// FeatureSet holds the feature values of a featured sound. Values are kept in
// the slot order of the category's schema; an empty string marks an unset
// slot.
//
// The zero value is an invalid feature set (without schema). Use
// NewFeatureSet.
type FeatureSet struct {
	schema *Schema
	values []string
}

// NewFeatureSet creates an empty feature set for a featured category.
// It returns an invalid feature set for other categories.
func NewFeatureSet(c Category) FeatureSet {
	s := SchemaFor(c)
	if s == nil {
		return FeatureSet{}
	}
	return FeatureSet{schema: s, values: make([]string, len(s.Slots))}
}

// Valid is true if the feature set has a schema.
func (fs FeatureSet) Valid() bool {
	return fs.schema != nil
}

// Schema returns the schema of the feature set.
func (fs FeatureSet) Schema() *Schema {
	return fs.schema
}

// Category returns the category of the feature set.
func (fs FeatureSet) Category() Category {
	if fs.schema == nil {
		return UnknownCategory
	}
	return fs.schema.Category
}

// Get returns the value of a feature, or "" if unset or not part of the
// schema.
func (fs FeatureSet) Get(feature string) string {
	if fs.schema == nil {
		return ""
	}
	if i, ok := fs.schema.Slot(feature); ok {
		return fs.values[i]
	}
	return ""
}

// Set sets the value of a feature. Setting a feature which is not a slot of
// the category is an error.
func (fs FeatureSet) Set(feature, value string) error {
	if fs.schema == nil {
		return fmt.Errorf("feature set has no schema")
	}
	i, ok := fs.schema.Slot(feature)
	if !ok {
		tracer().Debugf("feature %q is not defined for %s", feature, fs.schema.Category)
		return fmt.Errorf("feature %q is not defined for category %s", feature, fs.schema.Category)
	}
	fs.values[i] = value
	return nil
}

// Clone returns a deep copy.
func (fs FeatureSet) Clone() FeatureSet {
	if fs.schema == nil {
		return FeatureSet{}
	}
	values := make([]string, len(fs.values))
	copy(values, fs.values)
	return FeatureSet{schema: fs.schema, values: values}
}

// Values returns the non-empty feature values in name order.
func (fs FeatureSet) Values() []string {
	vals := make([]string, 0, 8)
	for _, v := range fs.values {
		if v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

// Each calls f for every set feature, in name order.
func (fs FeatureSet) Each(f func(feature, value string)) {
	if fs.schema == nil {
		return
	}
	for i, v := range fs.values {
		if v != "" {
			f(fs.schema.Slots[i], v)
		}
	}
}

// Name returns the feature name: the non-empty values in name order,
// followed by the category.
func (fs FeatureSet) Name() string {
	if fs.schema == nil {
		return ""
	}
	vals := fs.Values()
	return strings.Join(append(vals, fs.schema.Category.String()), " ")
}

// Equal compares two feature sets slot by slot.
func (fs FeatureSet) Equal(other FeatureSet) bool {
	if fs.schema != other.schema || len(fs.values) != len(other.values) {
		return false
	}
	for i := range fs.values {
		if fs.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (fs FeatureSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	fs.Each(func(f, v string) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(f)
		b.WriteByte(':')
		b.WriteString(v)
	})
	b.WriteByte('}')
	return b.String()
}
