// Package metaobject defines the domain entities for Shopify metaobjects:
// definitions (content-type schemas), entries (instances), and the shop
// reference data used by the setup flows.
package metaobject

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Reference is a resolved field reference (collection, media image, etc.).
type Reference struct {
	ID     string `json:"id,omitempty"`
	Handle string `json:"handle,omitempty"`
	Title  string `json:"title,omitempty"`

	// ImageURL is set when the reference resolves to a media image.
	ImageURL string `json:"imageUrl,omitempty"`
}

// Field is a single key/value pair on a metaobject entry.
// Value is the raw string representation the Admin API stores; typed access
// goes through the Field* accessors on Metaobject.
type Field struct {
	Key       string     `json:"key"`
	Value     *string    `json:"value"`
	Reference *Reference `json:"reference,omitempty"`
}

// Metaobject is a single entry of a content type. ID is assigned by the
// platform and is opaque (gid://shopify/Metaobject/<n>).
type Metaobject struct {
	ID     string  `json:"id"`
	Handle string  `json:"handle"`
	Type   string  `json:"type"`
	Fields []Field `json:"fields"`
}

// FieldDefinition describes one field of a metaobject definition as it
// exists in the store.
type FieldDefinition struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Definition is a metaobject content-type schema as it exists in the store.
// Identified by Type, which is unique within a store.
type Definition struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	FieldDefinitions []FieldDefinition `json:"fieldDefinitions"`
}

// Shop holds basic store identity returned by the Admin API.
type Shop struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	MyshopifyDomain string `json:"myshopifyDomain"`
	PrimaryDomain   string `json:"primaryDomain"`
}

// Collection is a product collection reference list item.
type Collection struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Handle        string `json:"handle"`
	ProductsCount int    `json:"productsCount"`
}

// Location is a physical store location reference list item.
type Location struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address []string `json:"address"`
}

// --- Field accessors ---
// All accessors tolerate a nil receiver and a missing key; they never panic.

// FieldValue returns the raw string value of the field with the given key,
// or nil when the entry or field is absent.
func (m *Metaobject) FieldValue(key string) *string {
	if m == nil {
		return nil
	}
	for i := range m.Fields {
		if m.Fields[i].Key == key {
			return m.Fields[i].Value
		}
	}
	return nil
}

// FieldBoolean returns true only when the field value is the literal "true".
func (m *Metaobject) FieldBoolean(key string) bool {
	v := m.FieldValue(key)
	return v != nil && *v == "true"
}

// FieldInt parses the field value as a base-10 integer, or nil when the
// field is absent or not numeric.
func (m *Metaobject) FieldInt(key string) *int {
	v := m.FieldValue(key)
	if v == nil {
		return nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil
	}
	return &n
}

// FieldDecimal parses the field value as an arbitrary-precision decimal,
// for number_decimal fields (prices, coordinates). Returns nil when the
// field is absent or not a valid decimal.
func (m *Metaobject) FieldDecimal(key string) *decimal.Decimal {
	v := m.FieldValue(key)
	if v == nil {
		return nil
	}
	d, err := decimal.NewFromString(*v)
	if err != nil {
		return nil
	}
	return &d
}

// FieldReference returns the resolved reference of the field with the given
// key, or nil when the entry or field is absent.
func (m *Metaobject) FieldReference(key string) *Reference {
	if m == nil {
		return nil
	}
	for i := range m.Fields {
		if m.Fields[i].Key == key {
			return m.Fields[i].Reference
		}
	}
	return nil
}
