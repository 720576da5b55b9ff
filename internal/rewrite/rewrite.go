// Package rewrite locates stamp marker calls in Go source and splices in the
// literal expressions resolved from one shared snapshot, so every call site
// rewritten during a run observes the identical capture.
package rewrite

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/davrd/buildstamp/internal/emit"
	"github.com/davrd/buildstamp/internal/snapshot"
	"github.com/davrd/buildstamp/internal/views"
)

// DefaultStampPath is the import path whose marker calls get rewritten.
const DefaultStampPath = "github.com/davrd/buildstamp/stamp"

type Rewriter struct {
	source    *snapshot.Source
	stampPath string
}

func New(source *snapshot.Source, stampPath string) *Rewriter {
	if stampPath == "" {
		stampPath = DefaultStampPath
	}
	return &Rewriter{source: source, stampPath: stampPath}
}

// File rewrites every marker call in src and returns the formatted result
// together with the number of calls rewritten. Files that do not import the
// stamp package come back unchanged with n == 0. Marker calls reached through
// a dot import or a blank import are not recognized.
func (r *Rewriter) File(ctx context.Context, filename string, src []byte) ([]byte, int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", filename, err)
	}

	stampName, aliased, ok := importName(file, r.stampPath)
	if !ok {
		return src, 0, nil
	}

	var (
		n        int
		applyErr error
		needed   = map[string]bool{}
	)
	astutil.Apply(file, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}
		kind, ok := markerCall(call, stampName)
		if !ok {
			return true
		}

		expr, imports, err := r.literal(ctx, kind, stampName)
		if err != nil {
			applyErr = fmt.Errorf("%s: resolve %s: %w", fset.Position(call.Pos()), kind.Tag(), err)
			return false
		}
		c.Replace(expr)
		for _, imp := range imports {
			needed[imp.Path] = true
		}
		n++
		return true
	}, nil)
	if applyErr != nil {
		return nil, 0, applyErr
	}
	if n == 0 {
		return src, 0, nil
	}

	for path := range needed {
		astutil.AddImport(fset, file, path)
	}
	if !usesName(file, stampName) {
		if aliased {
			astutil.DeleteNamedImport(fset, file, stampName, r.stampPath)
		} else {
			astutil.DeleteImport(fset, file, r.stampPath)
		}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		// cannot happen for a tree assembled from parsed source and
		// emitted literals; surfaced as an internal error regardless
		return nil, 0, fmt.Errorf("format %s: %w", filename, err)
	}
	return buf.Bytes(), n, nil
}

func (r *Rewriter) literal(ctx context.Context, kind views.Kind, stampName string) (ast.Expr, []emit.Import, error) {
	if kind.Versioned() {
		v, err := r.source.Toolchain(ctx)
		if err != nil {
			return nil, nil, err
		}
		return emit.Literal(kind, stampName, snapshot.Instant{}, v)
	}
	in, err := r.source.Instant()
	if err != nil {
		return nil, nil, err
	}
	return emit.Literal(kind, stampName, in, nil)
}

// importName returns the identifier the file binds the stamp import to.
func importName(file *ast.File, stampPath string) (name string, aliased bool, ok bool) {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != stampPath {
			continue
		}
		if spec.Name == nil {
			if i := strings.LastIndexByte(stampPath, '/'); i >= 0 {
				return stampPath[i+1:], false, true
			}
			return stampPath, false, true
		}
		if spec.Name.Name == "_" || spec.Name.Name == "." {
			return "", false, false
		}
		return spec.Name.Name, true, true
	}
	return "", false, false
}

// markerCall reports whether the call is a parameter-less stamp marker.
func markerCall(call *ast.CallExpr, stampName string) (views.Kind, bool) {
	if len(call.Args) != 0 {
		return 0, false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return 0, false
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok || ident.Name != stampName {
		return 0, false
	}
	return views.FromMarker(sel.Sel.Name)
}

// usesName reports whether the identifier still occurs in the file outside
// the import declarations.
func usesName(file *ast.File, name string) bool {
	used := false
	ast.Inspect(file, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.ImportSpec:
			return false
		case *ast.Ident:
			if n.Name == name {
				used = true
			}
		}
		return !used
	})
	return used
}
