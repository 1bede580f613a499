// Package linear renders resolved plans and the platform registry as line-oriented text or JSON.
package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/ui/output"
	"go.trai.ch/tgraph/internal/ui/style"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPlan writes plan to w in the given format.
func (r *Renderer) RenderPlan(w io.Writer, plan *domain.Plan, format domain.OutputFormat) error {
	if format == domain.FormatJSON {
		return writeJSON(w, plan)
	}

	out := output.New(w)
	p := &printer{out: out}

	p.line(out.String(planHeading(plan)).Bold().String())

	byGUID := make(map[string]*domain.PlanTarget, len(plan.Targets))
	width := 0
	for i := range plan.Targets {
		t := &plan.Targets[i]
		byGUID[t.GUID] = t
		width = max(width, len(displayName(t)))
	}

	for i := range plan.Targets {
		t := &plan.Targets[i]
		line := fmt.Sprintf("  %-*s  %s", width, displayName(t), destinationLabel(t))
		if tags := targetTags(t); tags != "" {
			line += "  " + p.muted(tags)
		}
		p.line(line)

		for _, guid := range t.Dependencies {
			dep, ok := byGUID[guid]
			if !ok {
				p.line("    " + style.Arrow + " " + guid)
				continue
			}
			p.line(fmt.Sprintf("    %s %s  %s", style.Arrow, displayName(dep), destinationLabel(dep)))
		}
	}

	if len(plan.Diagnostics) > 0 {
		p.line("")
		for _, d := range plan.Diagnostics {
			p.line(p.diagnostic(d))
		}
	}

	return p.err
}

// RenderPlatforms writes the registry to w in the given format.
func (r *Renderer) RenderPlatforms(w io.Writer, registry *domain.Registry, format domain.OutputFormat) error {
	if format == domain.FormatJSON {
		return writeJSON(w, registry)
	}

	out := output.New(w)
	p := &printer{out: out}

	nameWidth, displayWidth := len("PLATFORM"), len("NAME")
	for _, pl := range registry.Platforms {
		nameWidth = max(nameWidth, len(pl.Name))
		displayWidth = max(displayWidth, len(pl.DisplayName))
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, "PLATFORM", displayWidth, "NAME", "SDKS")
	p.line(out.String(header).Bold().String())

	for _, pl := range registry.Platforms {
		name := pl.Name
		if pl.Name == registry.HostPlatform {
			name += "*"
		}
		line := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, name, displayWidth, pl.DisplayName, strings.Join(sdkNames(registry, pl), ", "))
		if variants := variantNames(registry, pl); variants != "" {
			line += "  " + p.muted("variants: "+variants)
		}
		p.line(line)
	}

	if len(registry.Toolchains) > 0 {
		p.line("")
		for _, tc := range registry.Toolchains {
			line := tc.Identifier
			if len(tc.Aliases) > 0 {
				line += " (" + strings.Join(tc.Aliases, ", ") + ")"
			}
			if tc.Identifier == registry.DefaultToolchain {
				line += "  " + p.muted("default")
			}
			p.line(line)
		}
	}

	return p.err
}

// printer writes lines and keeps the first write error.
type printer struct {
	out *termenv.Output
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = p.out.WriteString(s + "\n")
}

func (p *printer) muted(s string) string {
	return p.out.String(s).Foreground(termenv.RGBColor(string(style.Slate))).String()
}

func (p *printer) diagnostic(d domain.Diagnostic) string {
	var icon string
	var color termenv.Color
	switch d.Level {
	case domain.LevelError:
		icon, color = style.Cross, termenv.RGBColor(string(style.Red))
	case domain.LevelWarning:
		icon, color = style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		icon, color = style.Dot, termenv.RGBColor(string(style.Slate))
	}

	msg := icon + " " + d.Level.String() + ": " + d.Message
	if d.Target != "" {
		msg += " [" + d.Target + "]"
	}
	return p.out.String(msg).Foreground(color).String()
}

func planHeading(plan *domain.Plan) string {
	parts := []string{string(plan.Action)}
	if plan.Configuration != "" {
		parts = append(parts, plan.Configuration)
	}
	if rd := plan.RunDestination; rd != nil {
		dest := rd.Platform
		if rd.SDKVariant != "" {
			dest += "/" + rd.SDKVariant
		}
		parts = append(parts, dest)
	}

	noun := "configured targets"
	if len(plan.Targets) == 1 {
		noun = "configured target"
	}
	return fmt.Sprintf("%d %s (%s)", len(plan.Targets), noun, strings.Join(parts, ", "))
}

func displayName(t *domain.PlanTarget) string {
	if t.Project == "" {
		return t.Target
	}
	return t.Project + ":" + t.Target
}

// destinationLabel names the SDK a target builds with, falling back to its platform.
func destinationLabel(t *domain.PlanTarget) string {
	label := t.SDK
	if label == "" {
		label = t.Platform
	}
	if label == "" {
		label = "-"
	}
	if t.SDKVariant != "" {
		label += "/" + t.SDKVariant
	}
	return label
}

func targetTags(t *domain.PlanTarget) string {
	var tags []string
	if t.TopLevel {
		tags = append(tags, "top-level")
	}
	if t.MergeableLibrary {
		tags = append(tags, "mergeable")
	}
	if len(tags) == 0 {
		return ""
	}
	return "(" + strings.Join(tags, ", ") + ")"
}

func sdkNames(registry *domain.Registry, p *domain.Platform) []string {
	var names []string
	for _, sdk := range registry.SDKs {
		if sdk.Platform == p.Name {
			names = append(names, sdk.CanonicalName)
		}
	}
	return names
}

func variantNames(registry *domain.Registry, p *domain.Platform) string {
	sdk, ok := registry.SDKFor(p.Name, "")
	if !ok || len(sdk.Variants) == 0 {
		return ""
	}
	names := make([]string, 0, len(sdk.Variants))
	for _, v := range sdk.Variants {
		names = append(names, v.Name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode output")
	}
	return nil
}
