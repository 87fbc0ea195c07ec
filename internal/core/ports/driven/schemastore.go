package driven

// SchemaStore provides access to JSON Schema documents.
// Implementations may load schemas from files, embed them in the binary,
// or fetch them from a remote configuration service.
type SchemaStore interface {
	// Load returns the schema document for the given package and name,
	// decoded from JSON. Returns domain.ErrSchemaNotFound (wrapped) when
	// no such document exists.
	Load(pkg, name string) (map[string]any, error)

	// Reload clears any cached schemas, forcing fresh loads on next access.
	// This is useful when schemas may have been edited on disk.
	Reload()
}

// Well-known schema coordinates used throughout the application.
// These constants define the contract between schema consumers and providers.
const (
	// SchemaPackagePoker groups the poker feedback schemas.
	SchemaPackagePoker = "poker"

	// SchemaSessionStats validates SessionStats payloads.
	SchemaSessionStats = "session-stats.schema.v1.json"
)
