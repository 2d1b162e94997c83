package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type MaintenanceRecord struct{ ent.Schema }

func (MaintenanceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "maintenance_records"},
	}
}

func (MaintenanceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.String("vendor_name").NotEmpty(),
		field.Time("invoice_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("labor_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("parts_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("services_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("freight_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("work_order").Optional().Nillable(),
		field.String("vehicle_registration").Optional().Nillable(),
		field.String("serial_number").Optional().Nillable(),
		field.JSON("parts", json.RawMessage{}).Optional(),
		field.JSON("flags", []string{}).Optional(),
		field.Bool("extracted_by_ocr").Default(false),
		field.Float32("confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (MaintenanceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("maintenance_records").
			Field("profile_id").
			Required().
			Unique(),
		edge.From("document", Document.Type).
			Ref("maintenance_records").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (MaintenanceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "invoice_date"),
		index.Fields("document_id"),
	}
}
