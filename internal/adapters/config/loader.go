// Package config provides the workspace loader for tgraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/tgraph/internal/core/domain"
	"go.trai.ch/tgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Mode represents the configuration mode of tgraph.
type Mode string

const (
	// ModeWorkspace indicates that tgraph has a workfile.
	ModeWorkspace Mode = "workspace"
	// ModeStandalone indicates that tgraph has only one project file.
	ModeStandalone Mode = "standalone"
)

var validNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

// Load reads the configuration found from cwd and returns the workspace and its platform registry.
func (l *Loader) Load(cwd string) (*domain.Workspace, *domain.Registry, error) {
	configPath, mode, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, nil, err
	}

	switch mode {
	case ModeStandalone:
		ws, err := l.loadProjectfile(configPath)
		if err != nil {
			return nil, nil, err
		}
		return ws, domain.DefaultRegistry(), nil
	case ModeWorkspace:
		return l.loadWorkfile(configPath)
	default:
		return nil, nil, zerr.With(domain.ErrConfigNotFound, "mode", mode)
	}
}

// DiscoverRoot walks up from cwd and returns the workspace root directory.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, mode, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}

	var root string
	switch mode {
	case ModeWorkspace:
		var workfile Workfile
		if err := readAndUnmarshalYAML(configPath, &workfile); err != nil {
			return "", err
		}
		root = workfile.Root
	default:
		var projectfile Projectfile
		if err := readAndUnmarshalYAML(configPath, &projectfile); err != nil {
			return "", err
		}
		root = projectfile.Root
	}
	return resolveRoot(configPath, root), nil
}

func (l *Loader) findConfiguration(cwd string) (string, Mode, error) {
	currentDir := cwd
	var standaloneCandidate string

	for {
		workfilePath := filepath.Join(currentDir, domain.WorkFileName)
		if _, err := os.Stat(workfilePath); err == nil {
			return workfilePath, ModeWorkspace, nil
		}

		if standaloneCandidate == "" {
			projectPath := filepath.Join(currentDir, domain.ProjectFileName)
			if _, err := os.Stat(projectPath); err == nil {
				standaloneCandidate = projectPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	if standaloneCandidate != "" {
		return standaloneCandidate, ModeStandalone, nil
	}

	return "", "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadProjectfile(configPath string) (*domain.Workspace, error) {
	var projectfile Projectfile
	if err := readAndUnmarshalYAML(configPath, &projectfile); err != nil {
		return nil, err
	}
	if projectfile.Project != "" {
		if err := validateProjectName(projectfile.Project, "."); err != nil {
			return nil, err
		}
	}

	ws := domain.NewWorkspace()
	root := resolveRoot(configPath, projectfile.Root)
	ws.SetRoot(root)

	if err := addProject(ws, &projectfile, root); err != nil {
		return nil, err
	}
	return ws, nil
}

func (l *Loader) loadWorkfile(configPath string) (*domain.Workspace, *domain.Registry, error) {
	var workfile Workfile
	if err := readAndUnmarshalYAML(configPath, &workfile); err != nil {
		return nil, nil, err
	}

	registry, err := buildRegistry(&workfile)
	if err != nil {
		return nil, nil, zerr.With(err, "file", configPath)
	}

	ws := domain.NewWorkspace()
	workspaceRoot := resolveRoot(configPath, workfile.Root)
	ws.SetRoot(workspaceRoot)
	ws.SetSettings(workfile.Settings)

	projectPaths, err := l.resolveProjectPaths(workspaceRoot, workfile.Projects)
	if err != nil {
		return nil, nil, err
	}

	// Track project names to ensure uniqueness
	projectNames := make(map[string]string)
	for _, projectPath := range projectPaths {
		if err := l.processProject(ws, workspaceRoot, projectPath, projectNames); err != nil {
			return nil, nil, err
		}
	}

	return ws, registry, nil
}

func (l *Loader) resolveProjectPaths(workspaceRoot string, patterns []string) ([]string, error) {
	// Several globs may match the same directory.
	projectPaths := make(map[string]struct{})

	for _, pattern := range patterns {
		absPattern := filepath.Join(workspaceRoot, pattern)

		matches, err := filepath.Glob(absPattern)
		if err != nil {
			return nil, zerr.Wrap(err, "glob pattern failed: "+pattern)
		}

		for _, match := range matches {
			projectPaths[match] = struct{}{}
		}
	}

	sortedPaths := make([]string, 0, len(projectPaths))
	for p := range projectPaths {
		sortedPaths = append(sortedPaths, p)
	}
	slices.Sort(sortedPaths)

	return sortedPaths, nil
}

func (l *Loader) processProject(
	ws *domain.Workspace,
	workspaceRoot, projectPath string,
	projectNames map[string]string,
) error {
	relPath, _ := filepath.Rel(workspaceRoot, projectPath)

	// Glob returns files too
	info, pathErr := os.Stat(projectPath)
	if pathErr != nil {
		return pathErr
	}
	if !info.IsDir() {
		return nil
	}

	projectFilePath := filepath.Join(projectPath, domain.ProjectFileName)
	if _, fileErr := os.Stat(projectFilePath); os.IsNotExist(fileErr) {
		l.Logger.Warn(fmt.Sprintf("%s missing in project %s, skipping", domain.ProjectFileName, relPath))
		return nil
	}

	projectfile, err := loadProjectfileFromPath(projectFilePath, relPath)
	if err != nil {
		return err
	}

	if projectfile.Project == "" {
		return zerr.With(domain.ErrMissingProjectName, "directory", relPath)
	}
	if err := validateProjectName(projectfile.Project, relPath); err != nil {
		return err
	}

	if existingPath, exists := projectNames[projectfile.Project]; exists {
		err := zerr.With(domain.ErrDuplicateProjectName, "project_name", projectfile.Project)
		err = zerr.With(err, "first_occurrence", existingPath)
		err = zerr.With(err, "duplicate_at", relPath)
		return err
	}
	projectNames[projectfile.Project] = relPath

	if projectfile.Root != "" {
		l.Logger.Warn(fmt.Sprintf("'root' defined in %s is ignored in workspace mode", relPath))
	}

	return addProject(ws, projectfile, projectPath)
}

func loadProjectfileFromPath(path, relPath string) (*Projectfile, error) {
	// #nosec G304 -- path is constructed from a validated project directory
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "directory", relPath)
	}

	var projectfile Projectfile
	if err := yaml.Unmarshal(data, &projectfile); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(err, "directory", relPath)
	}
	return &projectfile, nil
}

func validateProjectName(name, relPath string) error {
	if !validNameRegex.MatchString(name) {
		err := zerr.With(domain.ErrInvalidProjectName, "project_name", name)
		return zerr.With(err, "directory", relPath)
	}
	return nil
}

// addProject adds the project and its targets, in name order.
func addProject(ws *domain.Workspace, projectfile *Projectfile, dir string) error {
	project := &domain.Project{
		Name:     projectfile.Project,
		Dir:      dir,
		Settings: projectfile.Settings,
	}
	ws.AddProject(project)

	names := make([]string, 0, len(projectfile.Targets))
	for name := range projectfile.Targets {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		target, err := buildTarget(project, name, projectfile.Targets[name])
		if err != nil {
			return zerr.With(err, "project", project.Name)
		}
		if err := ws.AddTarget(target); err != nil {
			return err
		}
	}
	return nil
}

func buildTarget(project *domain.Project, name string, dto *TargetDTO) (*domain.Target, error) {
	if err := validateTargetName(name); err != nil {
		return nil, err
	}
	if dto == nil {
		dto = &TargetDTO{}
	}

	productType, err := domain.ParseProductType(dto.Type)
	if err != nil {
		return nil, zerr.With(err, "target", name)
	}

	target := &domain.Target{
		GUID:           domain.TargetGUID(project.Name, name),
		Name:           name,
		Project:        project,
		ProductType:    productType,
		ProductName:    dto.ProductName,
		Package:        dto.Package,
		Settings:       dto.Settings,
		LinkedProducts: dto.Link,
	}
	if dto.DynamicVariant != "" {
		target.DynamicVariantGUID = qualify(project.Name, dto.DynamicVariant)
	}

	for _, dep := range dto.Dependencies {
		if dep.Target == "" {
			return nil, zerr.With(domain.ErrInvalidTargetName, "dependency_of", name)
		}
		for _, f := range dep.PlatformFilters {
			if f.Platform == "" {
				err := zerr.With(domain.ErrInvalidPlatformFilter, "target", name)
				return nil, zerr.With(err, "dependency", dep.Target)
			}
		}
		target.Dependencies = append(target.Dependencies, domain.TargetDependency{
			GUID:            qualify(project.Name, dep.Target),
			Name:            dependencyName(dep.Target),
			PlatformFilters: dep.PlatformFilters,
		})
	}
	return target, nil
}

// qualify namespaces a target reference with the project unless it names one already.
func qualify(project, ref string) domain.InternedString {
	if strings.Contains(ref, ":") {
		return domain.NewInternedString(ref)
	}
	return domain.TargetGUID(project, ref)
}

func dependencyName(ref string) string {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// validateTargetName rejects names that cannot be told apart from a project-qualified reference.
func validateTargetName(name string) error {
	if name == "" || strings.Contains(name, ":") || strings.ContainsAny(name, " \t\n") {
		return zerr.With(domain.ErrInvalidTargetName, "target_name", name)
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
