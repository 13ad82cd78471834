// Package notebook decodes a single *.lpnb file into an ordered list of
// Sections, extracting each section's header and the cross-references its
// docs prose contains. It never touches other modules or the project as a
// whole -- that is internal/project and internal/index's job.
package notebook

// Reference points at a fragment elsewhere in the project. It is parsed
// verbatim from a markdown link destination of the form "path#header"
// found inside a section's docs.
type Reference struct {
	// Path is the project-relative module name taken from the part of the
	// link destination before "#". Empty means "same module".
	Path string
	// Header is the target fragment's header text in its original form: no
	// leading "#"s, no trimming beyond leading/trailing whitespace.
	Header string
}

// Section is the smallest unit the engine knows about: a code/docs pair,
// optionally headed, optionally referencing other sections.
type Section struct {
	// Code is emitted verbatim into the code tree.
	Code string
	// Docs is the section's prose, rendered verbatim into the docs tree.
	Docs string
	// Header is the raw header line including leading "#"s, taken from the
	// first line of Docs when that line begins with "#". Empty if the
	// section has no header.
	Header string
	// References are the cross-references extracted from Docs, in the
	// order their links appear.
	References []Reference
}

// HasHeader reports whether the section can be referenced by other modules.
func (s *Section) HasHeader() bool {
	return s.Header != ""
}

// Anchor returns the section's header with leading "#"s stripped, trimmed,
// and spaces replaced with hyphens -- the key this section is indexed
// under. Returns "" if the section has no header.
func (s *Section) Anchor() string {
	if s.Header == "" {
		return ""
	}
	return anchorForRawHeader(s.Header)
}
