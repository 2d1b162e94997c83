package schema

import (
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

type ExpenseRecord struct{ ent.Schema }

func (ExpenseRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "expense_records"},
	}
}

func (ExpenseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.String("vendor_name").NotEmpty(),
		field.Time("expense_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_total").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("category").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.JSON("flags", []string{}).Optional(),
		field.Bool("extracted_by_ocr").Default(false),
		field.Float32("confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExpenseRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("expense_records").
			Field("profile_id").
			Required().
			Unique(),
		edge.From("document", Document.Type).
			Ref("expense_records").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (ExpenseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "expense_date"),
		index.Fields("profile_id", "category"),
		index.Fields("document_id"),
	}
}
