package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_state (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);
`
