package notebook

import (
	"strings"

	"github.com/russross/blackfriday/v2"
	"gopkg.in/yaml.v3"

	"github.com/grove-tools/litbuild/internal/litErrors"
	"github.com/grove-tools/litbuild/internal/pathutil"
)

// rawFile mirrors the *.lpnb wire format: a mapping with a single
// recognized key, "sections", holding an ordered list of code/docs pairs.
// Unknown top-level keys are ignored (the format names no others).
type rawFile struct {
	Sections []rawSection `yaml:"sections"`
}

type rawSection struct {
	Code string `yaml:"code"`
	Docs string `yaml:"docs"`
}

// Parse decodes the serialized form of a notebook file and returns its
// sections in original order -- the order fragments are emitted in.
//
// A malformed wire format is a fatal read error for the file. A header
// anchor collision between two sections is fatal DuplicateHeader; no
// partial result is returned in that case.
func Parse(content []byte) ([]*Section, error) {
	var raw rawFile
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, litErrors.NewIOError("parse notebook", err)
	}

	sections := make([]*Section, 0, len(raw.Sections))
	seenAnchors := make(map[string]bool, len(raw.Sections))

	for _, rs := range raw.Sections {
		header := extractHeader(rs.Docs)
		refs := extractReferences(rs.Docs)

		section := &Section{
			Code:       rs.Code,
			Docs:       rs.Docs,
			Header:     header,
			References: refs,
		}

		if header != "" {
			anchor := anchorForRawHeader(header)
			if seenAnchors[anchor] {
				return nil, litErrors.NewDuplicateHeaderError(anchor)
			}
			seenAnchors[anchor] = true
		}

		sections = append(sections, section)
	}

	return sections, nil
}

// extractHeader returns the first line of docs, with the leading "#"s kept,
// iff that line begins with "#" after trimming. Only the first line is ever
// considered a header (I1).
func extractHeader(docs string) string {
	lines := strings.SplitN(docs, "\n", 2)
	if len(lines) == 0 {
		return ""
	}
	first := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(first, "#") {
		return ""
	}
	return first
}

// anchorForRawHeader strips leading "#"s from a raw header line (one that
// still carries them), then applies the anchor law from pathutil.
func anchorForRawHeader(header string) string {
	stripped := strings.TrimLeft(header, "#")
	return pathutil.HeaderToAnchor(stripped)
}

// extractReferences walks docs as markdown, collecting every link whose
// destination contains "#". The destination is split at the first "#":
// the left part becomes Reference.Path, the right part Reference.Header.
// Links without "#" are ignored; links where both halves are empty are
// ignored too (an empty destination carries no reference).
func extractReferences(docs string) []Reference {
	var refs []Reference

	parser := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := parser.Parse([]byte(docs))

	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if !entering || node.Type != blackfriday.Link {
			return blackfriday.GoToNext
		}
		dest := string(node.LinkData.Destination)
		idx := strings.IndexByte(dest, '#')
		if idx < 0 {
			return blackfriday.GoToNext
		}
		path := dest[:idx]
		header := dest[idx+1:]
		if path == "" && header == "" {
			return blackfriday.GoToNext
		}
		refs = append(refs, Reference{Path: path, Header: header})
		return blackfriday.GoToNext
	})

	return refs
}
