// Package catalog holds the educational content served to clients: subjects,
// their modules and the audio lesson content per module. Content is read-only
// at runtime; per-user completion state lives in the store, not here.
package catalog

import "errors"

var (
	ErrSubjectNotFound = errors.New("catalog: subject not found")
	ErrModuleNotFound  = errors.New("catalog: module not found")
)

// Subject is a top-level study area shown on the dashboard.
type Subject struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Module is one lesson within a subject. Completed is per-user state and is
// filled in by the service layer, never by the provider.
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Completed   bool   `json:"completed"`
}

// SubjectDetail is a subject with its module list.
type SubjectDetail struct {
	SubjectName string   `json:"subjectName"`
	Modules     []Module `json:"modules"`
}

// ModuleContent is the playable content for one module.
type ModuleContent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AudioURL   string `json:"audioUrl"`
	Transcript string `json:"transcript"`
}

// Provider serves catalog content. The static in-memory provider is the only
// implementation today; a database-backed one can slot in behind the same
// interface.
type Provider interface {
	Subjects() []Subject

	// SubjectDetail returns the module list for a subject slug. Modules are
	// returned with Completed unset. Returns ErrSubjectNotFound for unknown
	// slugs.
	SubjectDetail(slug string) (SubjectDetail, error)

	// ModuleContent returns the lesson content for a module id. Returns
	// ErrModuleNotFound when the module has no content or does not exist.
	ModuleContent(moduleID string) (ModuleContent, error)

	// ModuleExists reports whether a module id appears in any subject's
	// module list, content or not.
	ModuleExists(moduleID string) bool
}
