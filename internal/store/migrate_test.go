package store

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"

	entschema "github.com/abhisek/middlemath/ent/schema"
)

type entity interface {
	Mixin() []ent.Mixin
	Fields() []ent.Field
}

// entityFields flattens mixin and own fields in declaration order.
func entityFields(e entity) []ent.Field {
	var fields []ent.Field
	for _, m := range e.Mixin() {
		fields = append(fields, m.Fields()...)
	}
	return append(fields, e.Fields()...)
}

func TestTablesMatchEntitySchemas(t *testing.T) {
	tests := []struct {
		table  *schema.Table
		entity entity
	}{
		{attemptsTable, entschema.Attempt{}},
		{sessionEventsTable, entschema.SessionEvent{}},
	}

	for _, tt := range tests {
		t.Run(tt.table.Name, func(t *testing.T) {
			fields := entityFields(tt.entity)
			// Column 0 is the auto-increment id.
			cols := tt.table.Columns[1:]
			if len(cols) != len(fields) {
				t.Fatalf("table has %d columns, entity has %d fields", len(cols), len(fields))
			}
			for i, f := range fields {
				d := f.Descriptor()
				if cols[i].Name != d.Name {
					t.Errorf("column %d = %q, entity field %q", i+1, cols[i].Name, d.Name)
				}
				if cols[i].Type != d.Info.Type {
					t.Errorf("column %q type = %v, entity type %v", cols[i].Name, cols[i].Type, d.Info.Type)
				}
				if cols[i].Unique != d.Unique {
					t.Errorf("column %q unique = %v, entity %v", cols[i].Name, cols[i].Unique, d.Unique)
				}
			}
		})
	}
}
