// Package sourcemap tracks the mapping from byte offsets in a source
// buffer to user-visible (file, line, column) triples, rebased across
// #line directives encountered while lexing.
package sourcemap

import "fmt"

// ContextId is an opaque handle into a Map. The zero value names the
// context that is active before any #line directive has been seen.
type ContextId int

// physCtx is the context interned for the original, un-rebased file.
const physCtx ContextId = 0

// fileCtx describes one (filename, line_offset) pair: a physical line
// number minus this offset yields the user-visible line number that a
// #line directive requested.
type fileCtx struct {
	filename   string
	hasFile    bool
	lineOffset int // logical_line = physical_line - lineOffset
}

// Map owns every interned context produced while lexing one source
// file. It never copies source content; spans carry byte offsets only.
type Map struct {
	filename string
	contexts []fileCtx
	byValue  map[fileCtx]ContextId
}

// New creates a Map for a source buffer named filename (empty for an
// anonymous/stdin buffer). The returned Map already owns context 0,
// the physical file with no #line rebasing applied.
func New(filename string) *Map {
	m := &Map{
		filename: filename,
		byValue:  make(map[fileCtx]ContextId),
	}
	root := fileCtx{filename: filename, hasFile: filename != "", lineOffset: 0}
	m.contexts = append(m.contexts, root)
	m.byValue[root] = physCtx
	return m
}

// InternContext returns the handle for (filename, lineOffset),
// creating one if this exact pair hasn't been seen before. Idempotent
// by value: the same pair always yields the same ContextId.
func (m *Map) InternContext(filename *string, lineOffset int) ContextId {
	key := fileCtx{lineOffset: lineOffset}
	if filename != nil {
		key.filename = *filename
		key.hasFile = true
	} else {
		key.filename = m.contexts[physCtx].filename
		key.hasFile = m.contexts[physCtx].hasFile
	}
	if id, ok := m.byValue[key]; ok {
		return id
	}
	id := ContextId(len(m.contexts))
	m.contexts = append(m.contexts, key)
	m.byValue[key] = id
	return id
}

// Location is the resolved (file, line, column) triple for a span,
// plus the optional source snippet used by the diagnostics collaborator.
type Location struct {
	File    string
	HasFile bool
	Line    int
	Column  int
	Snippet string
}

// Resolve maps a physical line/column (computed by the lexer while
// scanning) through the context's rebasing to produce a user-visible
// location. physLine/physCol are 1-based.
func (m *Map) Resolve(ctx ContextId, physLine, physCol int) Location {
	c := m.contexts[ctx]
	return Location{
		File:    c.filename,
		HasFile: c.hasFile,
		Line:    physLine - c.lineOffset,
		Column:  physCol,
	}
}

// ResolveOffset maps a byte offset in source through ctx's rebasing to
// a user-visible Location, computing the physical line/column by
// scanning source up to offset. Spans only ever carry byte offsets
// (no copied content), so this scan is how a diagnostic renderer
// recovers line/column lazily, on the rarely-exercised error path
// rather than during lexing itself.
func (m *Map) ResolveOffset(source string, ctx ContextId, offset int) Location {
	if offset > len(source) {
		offset = len(source)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	loc := m.Resolve(ctx, line, col)
	return loc.WithSnippet(lineAt(source, line))
}

func lineAt(source string, line int) string {
	start := 0
	cur := 1
	for i := 0; i < len(source); i++ {
		if cur == line {
			start = i
			break
		}
		if source[i] == '\n' {
			cur++
		}
	}
	end := start
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return source[start:end]
}

// WithSnippet attaches a source snippet line to a previously resolved
// Location; used only by the diagnostics collaborator.
func (l Location) WithSnippet(snippet string) Location {
	l.Snippet = snippet
	return l
}

// String renders "file:line:col" or "line:col" when no filename is known.
func (l Location) String() string {
	if l.HasFile {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
