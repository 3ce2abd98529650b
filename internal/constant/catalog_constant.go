package constant

const (
	// SourcePathSettingKey is the settings key holding the location of the
	// legacy pricing table.
	SourcePathSettingKey = "db_path"

	// DefaultSourcePath is seeded at migration time, mirroring the value the
	// legacy deployment shipped with.
	DefaultSourcePath = "items.DB"

	// SearchPageSize is the fixed page size of the catalog search contract.
	SearchPageSize = 50
)
