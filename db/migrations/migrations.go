package migrations

import "embed"

// FS embeds the SQL migrations of the campaign tree schema. They are read
// through the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
