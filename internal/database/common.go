package database

import sq "github.com/Masterminds/squirrel"

// PSQL builds queries with postgres-style dollar placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const EventsTable = "events"
