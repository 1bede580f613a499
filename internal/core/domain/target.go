package domain

import (
	"path"
	"slices"

	"go.trai.ch/zerr"
)

// ProductType classifies what a target produces.
type ProductType string

const (
	// ProductTypeApplication is an application bundle.
	ProductTypeApplication ProductType = "application"
	// ProductTypeFramework is a framework bundle.
	ProductTypeFramework ProductType = "framework"
	// ProductTypeStaticLibrary is a static archive.
	ProductTypeStaticLibrary ProductType = "static-library"
	// ProductTypeDynamicLibrary is a dynamic library.
	ProductTypeDynamicLibrary ProductType = "dynamic-library"
	// ProductTypeTool is a command-line tool built for the target platform.
	ProductTypeTool ProductType = "tool"
	// ProductTypeHostBuildTool is a tool that runs on the build machine during the build.
	ProductTypeHostBuildTool ProductType = "host-build-tool"
	// ProductTypeAggregate groups other targets and produces nothing itself.
	ProductTypeAggregate ProductType = "aggregate"
	// ProductTypePackageProduct is a product vended by a package.
	ProductTypePackageProduct ProductType = "package-product"
	// ProductTypeBundle is a loadable bundle.
	ProductTypeBundle ProductType = "bundle"
)

var knownProductTypes = []ProductType{
	ProductTypeApplication,
	ProductTypeFramework,
	ProductTypeStaticLibrary,
	ProductTypeDynamicLibrary,
	ProductTypeTool,
	ProductTypeHostBuildTool,
	ProductTypeAggregate,
	ProductTypePackageProduct,
	ProductTypeBundle,
}

// ParseProductType validates a product type name. An empty name means framework.
func ParseProductType(s string) (ProductType, error) {
	if s == "" {
		return ProductTypeFramework, nil
	}
	pt := ProductType(s)
	if !slices.Contains(knownProductTypes, pt) {
		return "", zerr.With(ErrUnknownProductType, "product_type", s)
	}
	return pt, nil
}

// PlatformFilter restricts a dependency edge to a platform, optionally narrowed to an environment
// such as "simulator" or "maccatalyst".
type PlatformFilter struct {
	Platform    string `json:"platform" yaml:"platform"`
	Environment string `json:"environment,omitempty" yaml:"environment"`
}

// PlatformFilterContext is the platform filter identity of the configuration a dependency is
// evaluated in.
type PlatformFilterContext struct {
	Platform    string
	Environment string
}

// String returns the platform, suffixed with the environment when there is one.
func (ctx PlatformFilterContext) String() string {
	if ctx.Environment == "" {
		return ctx.Platform
	}
	return ctx.Platform + "-" + ctx.Environment
}

// Matches reports whether a dependency carrying filters applies in ctx.
// An empty filter set applies everywhere.
func (ctx PlatformFilterContext) Matches(filters []PlatformFilter) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f.Platform == ctx.Platform && f.Environment == ctx.Environment {
			return true
		}
	}
	return false
}

// TargetDependency is a statically declared dependency edge.
type TargetDependency struct {
	GUID            InternedString
	Name            string
	PlatformFilters []PlatformFilter
}

// Project groups targets and carries project-level build settings.
type Project struct {
	Name     string
	Dir      string
	Settings map[string]string
}

// Target is a node in the static project graph. It is immutable once loaded.
type Target struct {
	GUID           InternedString
	Name           string
	Project        *Project
	ProductType    ProductType
	ProductName    string
	Package        bool
	Settings       map[string]string
	Dependencies   []TargetDependency
	LinkedProducts []string
	// DynamicVariantGUID names a target that is built in place of this one when it is depended on.
	DynamicVariantGUID InternedString
}

// IsAggregate reports whether the target is an aggregate.
func (t *Target) IsAggregate() bool {
	return t.ProductType == ProductTypeAggregate
}

// IsHostBuildTool reports whether the target must run on the build machine.
func (t *Target) IsHostBuildTool() bool {
	return t.ProductType == ProductTypeHostBuildTool
}

// ProductFileName returns the file name of the product as it appears in a link phase.
func (t *Target) ProductFileName() string {
	name := t.ProductName
	if name == "" {
		name = t.Name
	}
	switch t.ProductType {
	case ProductTypeFramework:
		return name + ".framework"
	case ProductTypeStaticLibrary:
		return "lib" + name + ".a"
	case ProductTypeDynamicLibrary:
		return "lib" + name + ".dylib"
	case ProductTypeApplication:
		return name + ".app"
	case ProductTypeBundle:
		return name + ".bundle"
	case ProductTypePackageProduct:
		return name + ".o"
	default:
		return name
	}
}

// Links reports whether the link phase of t references the product of dep, matching basenames.
func (t *Target) Links(dep *Target) bool {
	want := dep.ProductFileName()
	for _, p := range t.LinkedProducts {
		if path.Base(p) == want {
			return true
		}
	}
	return false
}

// String returns the target name.
func (t *Target) String() string {
	return t.Name
}
