package migrations

import "embed"

// FS embeds SQL migration files stored in this directory, one subdirectory
// per database driver. The golang-migrate library reads them via the iofs
// source driver when applying migrations.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const Version = 2
