package schema

import (
	"fmt"
	"reflect"
)

// Meta describes how one struct type maps onto a table: storage name,
// primary-key column, and the declared non-key fields in order.
type Meta struct {
	Type     reflect.Type
	Name     string   // table storage name
	Key      string   // primary-key column name
	KeyIndex []int    // struct index of the key field
	Fields   []*Field // non-key fields in declaration order
}

// Field maps one exported struct field onto a column.
type Field struct {
	Name   string // Go field name
	Column string
	Index  []int
	Type   reflect.Type
}

// Columns returns the key column followed by the declared field columns.
func (m *Meta) Columns() []string {
	cols := make([]string, 0, len(m.Fields)+1)
	cols = append(cols, m.Key)
	for _, f := range m.Fields {
		cols = append(cols, f.Column)
	}
	return cols
}

// TableNamer overrides the derived table name for a struct type.
type TableNamer interface {
	TableName() string
}

func buildMeta(t reflect.Type, naming NamingStrategy, tagName string) (*Meta, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: invalid entity type %s (expected struct)", t.Kind())
	}

	meta := &Meta{Type: t, Name: naming.TableName(t.Name())}
	if tn, ok := reflect.New(t).Interface().(TableNamer); ok {
		meta.Name = tn.TableName()
	}

	// First pass: locate the key field. An explicit pk tag wins over the
	// conventional ID field.
	keyField := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := parseTag(f.Tag.Get(tagName))
		if tag.Skip {
			continue
		}
		if tag.Key {
			keyField = i
			break
		}
		if keyField < 0 && f.Name == "ID" {
			keyField = i
		}
	}
	if keyField < 0 {
		return nil, fmt.Errorf("schema: entity %s has no primary key: name a field ID or tag one with %q", t.Name(), tagName+`:"...,pk"`)
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := parseTag(f.Tag.Get(tagName))
		if tag.Skip {
			continue
		}
		column := tag.Column
		if column == "" {
			column = naming.ColumnName(f.Name)
		}
		if i == keyField {
			meta.Key = column
			meta.KeyIndex = f.Index
			continue
		}
		meta.Fields = append(meta.Fields, &Field{
			Name:   f.Name,
			Column: column,
			Index:  f.Index,
			Type:   f.Type,
		})
	}

	return meta, nil
}
