package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SnapshotColumns holds the columns for the "catalog_snapshot" table.
	SnapshotColumns = []*schema.Column{
		{Name: colPosition, Type: field.TypeInt},
		{Name: colName, Type: field.TypeString, Size: 2147483647},
		{Name: colLevel, Type: field.TypeString, Size: 2147483647},
		{Name: colImg, Type: field.TypeString, Size: 2147483647},
	}
	// SnapshotTable holds the schema information for the "catalog_snapshot" table.
	SnapshotTable = &schema.Table{
		Name:       snapshotTable,
		Columns:    SnapshotColumns,
		PrimaryKey: []*schema.Column{SnapshotColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SnapshotTable,
	}
)
