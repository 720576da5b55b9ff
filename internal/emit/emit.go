// Package emit turns resolved views into Go expressions ready to splice over
// a marker call site.
package emit

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/davrd/buildstamp/internal/snapshot"
	"github.com/davrd/buildstamp/internal/views"
)

const (
	timePath   = "time"
	semverPath = "github.com/Masterminds/semver/v3"
)

// Import is an import path the emitted expression requires in the target file.
type Import struct {
	Path string
}

// Literal renders the kind's view as an expression for direct substitution.
// stampName is the identifier the target file uses for the stamp import.
// Structured values become constructor calls whose validation cannot fail for
// captured fields; primitives and strings become literal tokens. The version
// argument is consulted only for versioned kinds and may be nil otherwise.
func Literal(kind views.Kind, stampName string, in snapshot.Instant, v *semver.Version) (ast.Expr, []Import, error) {
	switch kind {
	case views.KindDate:
		d := views.Date(in)
		expr := call(stampName, "MustDate", intLit(d.Year), monthSel(d.Month), intLit(d.Day))
		return expr, []Import{{Path: timePath}}, nil

	case views.KindDateString:
		return strLit(views.DateString(in)), nil, nil

	case views.KindTime:
		t := views.TimeOfDay(in)
		return call(stampName, "MustTimeOfDay", intLit(t.Hour), intLit(t.Minute), intLit(t.Second)), nil, nil

	case views.KindTimeString:
		return strLit(views.TimeString(in)), nil, nil

	case views.KindDateTime:
		expr := call("time", "Date",
			intLit(in.Year), monthSel(in.Month), intLit(in.Day),
			intLit(in.Hour), intLit(in.Minute), intLit(in.Second),
			intLit(0), sel("time", "UTC"),
		)
		return expr, []Import{{Path: timePath}}, nil

	case views.KindDateTimeString:
		return strLit(views.DateTimeString(in)), nil, nil

	case views.KindUnixSeconds:
		return int64Lit(views.UnixSeconds(in)), nil, nil

	case views.KindToolchainVersion:
		expr := call("semver", "MustParse", strLit(views.VersionString(v)))
		return expr, []Import{{Path: semverPath}}, nil

	case views.KindToolchainVersionString:
		return strLit(views.VersionString(v)), nil, nil

	case views.KindToolchainVersionMajor:
		return uintLit(views.VersionMajor(v)), nil, nil

	case views.KindToolchainVersionMinor:
		return uintLit(views.VersionMinor(v)), nil, nil

	case views.KindToolchainVersionPatch:
		return uintLit(views.VersionPatch(v)), nil, nil

	case views.KindToolchainVersionPrerelease:
		return strLit(views.VersionPrerelease(v)), nil, nil

	case views.KindToolchainVersionBuildMetadata:
		return strLit(views.VersionBuildMetadata(v)), nil, nil
	}
	return nil, nil, fmt.Errorf("emit: unknown view kind %d", int(kind))
}

func sel(pkg, name string) ast.Expr {
	return &ast.SelectorExpr{X: ast.NewIdent(pkg), Sel: ast.NewIdent(name)}
}

func call(pkg, fn string, args ...ast.Expr) ast.Expr {
	return &ast.CallExpr{Fun: sel(pkg, fn), Args: args}
}

func monthSel(m time.Month) ast.Expr {
	// time.Month constants are named after the month, e.g. time.March
	return sel("time", m.String())
}

func strLit(s string) ast.Expr {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func intLit(i int) ast.Expr {
	return int64Lit(int64(i))
}

func int64Lit(i int64) ast.Expr {
	if i < 0 {
		return &ast.UnaryExpr{
			Op: token.SUB,
			X:  &ast.BasicLit{Kind: token.INT, Value: strconv.FormatUint(uint64(-i), 10)},
		}
	}
	return &ast.BasicLit{Kind: token.INT, Value: strconv.FormatInt(i, 10)}
}

func uintLit(u uint64) ast.Expr {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.FormatUint(u, 10)}
}
