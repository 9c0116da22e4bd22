package fiber

import (
	"reflect"
	"slices"
)

// TextKey is the single field name under which a text node's string props
// are exposed.
const TextKey = "text"

// Record is a lazy, read-only key/value view over a props or state bag.
// Fields are resolved on each Get rather than copied up front, so a bag
// holding large or cyclic platform references costs nothing until a caller
// actually asks for one of its fields.
//
// The zero Record is the empty view.
type Record struct {
	text   string
	isText bool
	bag    reflect.Value
}

// NewRecord normalizes a raw bag into a Record. Strings become the
// single-field text record. Maps with string keys and structs (including
// pointers to structs) expose their entries and exported fields. Anything
// else, including nil, normalizes to the empty record.
func NewRecord(bag any) Record {
	switch v := bag.(type) {
	case nil:
		return Record{}
	case string:
		return Record{text: v, isText: true}
	}

	rv := reflect.ValueOf(bag)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Record{}
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Record{}
		}
		return Record{bag: rv}
	case reflect.Struct:
		return Record{bag: rv}
	default:
		return Record{}
	}
}

// IsEmpty reports whether the record exposes no fields.
func (r Record) IsEmpty() bool {
	return !r.isText && !r.bag.IsValid()
}

// IsText reports whether the record is a text-node view.
func (r Record) IsText() bool {
	return r.isText
}

// Text returns the text value for a text record, "" otherwise.
func (r Record) Text() string {
	return r.text
}

// Get resolves one field by name. The bool result is false when the field
// does not exist.
func (r Record) Get(key string) (any, bool) {
	if r.isText {
		if key == TextKey {
			return r.text, true
		}
		return nil, false
	}
	if !r.bag.IsValid() {
		return nil, false
	}
	switch r.bag.Kind() {
	case reflect.Map:
		v := r.bag.MapIndex(reflect.ValueOf(key))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	default: // struct
		f, ok := r.bag.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return nil, false
		}
		return r.bag.FieldByIndex(f.Index).Interface(), true
	}
}

// Keys returns the field names in sorted order.
func (r Record) Keys() []string {
	if r.isText {
		return []string{TextKey}
	}
	if !r.bag.IsValid() {
		return nil
	}
	var keys []string
	switch r.bag.Kind() {
	case reflect.Map:
		for _, k := range r.bag.MapKeys() {
			keys = append(keys, k.String())
		}
	default:
		t := r.bag.Type()
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				keys = append(keys, f.Name)
			}
		}
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of exposed fields.
func (r Record) Len() int {
	return len(r.Keys())
}

// Map materializes every field into a plain map. Intended for display;
// query paths should stick to Get.
func (r Record) Map() map[string]any {
	keys := r.Keys()
	if len(keys) == 0 {
		return nil
	}
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		v, _ := r.Get(k)
		out[k] = v
	}
	return out
}

// PropsOf returns the normalized view of a node's last rendered input.
// Text-node string props surface as the single-field text record.
func PropsOf(n *Node) Record {
	if n == nil {
		return Record{}
	}
	return NewRecord(n.Props)
}
