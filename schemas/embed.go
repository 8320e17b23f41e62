// Package schemas provides the embedded SQL that creates the knowledge tables
// and the JSON schema of the knowledge file.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Knowledge is the JSON schema the knowledge file must satisfy.
//
//go:embed knowledge.schema.json
var Knowledge []byte
