// Package lint walks Go source for marked field-set call sites and validates
// each one against the declared fields of its target type. It is the
// build-time front-end over the fieldset core: one independent check per call
// site, no shared mutable state beyond the read-only provider.
package lint

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/containerd/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	fieldset "github.com/utopos/fieldset"
	"github.com/utopos/fieldset/typesprov"
)

// CallSite is one marker invocation found in the scanned source.
type CallSite struct {
	File     string
	Line     int
	Column   int
	Marker   string
	TypeRef  ast.Expr
	FieldSet ast.Expr
}

// Run scans dir for marked call sites and validates them against type
// information loaded from cfg.Packages. Findings are ordered by file, line
// and column regardless of how the checks were scheduled.
func Run(ctx context.Context, cfg Config, dir string) (*Report, error) {
	started := time.Now().UTC()

	provider, err := typesprov.Load(dir, cfg.Packages...)
	if err != nil {
		return nil, err
	}
	cached := fieldset.NewCachedProvider(provider)

	sites, err := CollectCallSites(ctx, dir, cfg.Markers)
	if err != nil {
		return nil, err
	}
	log.G(ctx).WithField("sites", len(sites)).Debug("collected call sites")

	findings := make([]*Finding, len(sites))
	limit := cfg.Parallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, site := range sites {
		i, site := i, site
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := fieldset.Validate(site.TypeRef, site.FieldSet, cached); err != nil {
				findings[i] = newFinding(site, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:   uuid.NewString(),
		Started: started,
		Sites:   len(sites),
	}
	for _, f := range findings {
		if f != nil {
			rep.Findings = append(rep.Findings, *f)
		}
	}
	sort.Slice(rep.Findings, func(i, j int) bool {
		a, b := rep.Findings[i], rep.Findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return rep, nil
}

// CollectCallSites parses every non-test .go file under dir and returns the
// two-argument calls whose callee matches one of the marker names. Vendor and
// testdata trees are skipped.
func CollectCallSites(ctx context.Context, dir string, markers []string) ([]CallSite, error) {
	wanted := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		wanted[m] = struct{}{}
	}

	var sites []CallSite
	fset := token.NewFileSet()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "vendor", "testdata":
				return filepath.SkipDir
			}
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			log.G(ctx).WithError(err).WithField("file", path).Warn("skipping unparsable file")
			return nil
		}
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			name := calleeName(call.Fun)
			if _, ok := wanted[name]; !ok {
				return true
			}
			if len(call.Args) != 2 {
				log.G(ctx).WithField("file", path).Warnf("marker %s called with %d args, expected 2", name, len(call.Args))
				return true
			}
			pos := fset.Position(call.Pos())
			sites = append(sites, CallSite{
				File:     pos.Filename,
				Line:     pos.Line,
				Column:   pos.Column,
				Marker:   name,
				TypeRef:  call.Args[0],
				FieldSet: call.Args[1],
			})
			return true
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sites, nil
}

// calleeName renders a callee as package.Func or Func; anything more exotic
// cannot be a marker.
func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		if pkg, ok := f.X.(*ast.Ident); ok {
			return pkg.Name + "." + f.Sel.Name
		}
	}
	return ""
}
