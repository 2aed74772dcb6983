package sqlite

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Versions are sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	day         TEXT NOT NULL DEFAULT '00',
	month       TEXT NOT NULL DEFAULT '00',
	year        TEXT NOT NULL DEFAULT '0000',
	completed   INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1))
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
