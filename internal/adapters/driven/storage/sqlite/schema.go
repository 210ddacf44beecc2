package sqlite

// column is one expected column and the DDL used to add it to an
// existing table. Added columns cannot be NOT NULL or PRIMARY KEY.
type column struct {
	name string
	ddl  string
}

type tableSchema struct {
	name    string
	columns []column
}

// expectedSchema lists every column the current release reads or writes,
// apart from each table's primary key, which migrations create.
var expectedSchema = []tableSchema{
	{
		name: "favorites",
		columns: []column{
			{"name", "TEXT"},
			{"type", "TEXT"},
			{"breed", "TEXT"},
			{"age", "TEXT"},
			{"contact", "TEXT"},
			{"photo_url", "TEXT"},
			{"phone", "TEXT"},
			{"gender", "TEXT"},
			{"size", "TEXT"},
			{"description", "TEXT"},
			{"created_at", "DATETIME"},
		},
	},
	{
		name: "search_history",
		columns: []column{
			{"animal_type", "TEXT"},
			{"location", "TEXT"},
			{"age", "TEXT"},
			{"size", "TEXT"},
			{"breed", "TEXT"},
			{"gender", "TEXT"},
			{"per_page", "INTEGER"},
			{"page", "INTEGER"},
			{"created_at", "DATETIME"},
		},
	},
}
