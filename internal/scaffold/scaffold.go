// Package scaffold materializes a starter template into a target directory.
package scaffold

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/appforge/appforge/internal/logging"
)

// templatePrefix is the naming convention for template source directories.
const templatePrefix = "template-"

// Error describes a failed scaffolding operation.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Scaffolder copies template trees into place. The copy is a single
// blocking operation; a failure surfaces as *Error and the partially
// created destination is left in place.
type Scaffolder struct {
	Fs           afero.Fs
	WorkDir      string
	TemplateRoot string
	Out          io.Writer
	Logger       logging.Logger
}

// New returns a Scaffolder over the real filesystem.
func New(workDir, templateRoot string, logger logging.Logger) *Scaffolder {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Scaffolder{
		Fs:           afero.NewOsFs(),
		WorkDir:      workDir,
		TemplateRoot: templateRoot,
		Out:          os.Stdout,
		Logger:       logger.WithComponent("scaffold"),
	}
}

// DefaultTemplateRoot returns the directory holding the template trees:
// the directory of the running executable.
func DefaultTemplateRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	return filepath.Dir(exe), nil
}

// Scaffold copies the template named by templateID into targetDir
// (resolved against WorkDir), creating the destination and any missing
// ancestors first. It returns the absolute destination path.
func (s *Scaffolder) Scaffold(ctx context.Context, targetDir, templateID string) (string, error) {
	dest := targetDir
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(s.WorkDir, targetDir)
	}
	src := filepath.Join(s.TemplateRoot, templatePrefix+templateID)

	// Validate the source before touching the destination so an unknown
	// template id never leaves a half-made directory behind.
	info, err := s.Fs.Stat(src)
	if err != nil {
		return "", &Error{Op: "locate template", Path: src, Err: err}
	}
	if !info.IsDir() {
		return "", &Error{Op: "locate template", Path: src, Err: fmt.Errorf("not a directory")}
	}

	if err := s.Fs.MkdirAll(dest, 0o755); err != nil {
		return "", &Error{Op: "create directory", Path: dest, Err: err}
	}

	s.Logger.Debug(ctx, "copying template", "template", templateID, "src", src, "dest", dest)

	if err := s.copyTree(src, dest); err != nil {
		return "", err
	}

	if err := s.rewritePackageName(dest); err != nil {
		return "", err
	}

	return dest, nil
}

// renames maps special template file names to their real names. npm strips
// .gitignore from published packages, so templates ship it as _gitignore.
var renames = map[string]string{
	"_gitignore": ".gitignore",
}

func (s *Scaffolder) copyTree(src, dest string) error {
	return afero.Walk(s.Fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &Error{Op: "read template", Path: path, Err: err}
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return &Error{Op: "resolve path", Path: path, Err: err}
		}
		if rel == "." {
			return nil
		}

		name := filepath.Base(rel)
		if renamed, ok := renames[name]; ok {
			rel = filepath.Join(filepath.Dir(rel), renamed)
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			if err := s.Fs.MkdirAll(target, 0o755); err != nil {
				return &Error{Op: "create directory", Path: target, Err: err}
			}
			return nil
		}

		return s.copyFile(path, target, info.Mode())
	})
}

func (s *Scaffolder) copyFile(src, dest string, mode os.FileMode) error {
	data, err := afero.ReadFile(s.Fs, src)
	if err != nil {
		return &Error{Op: "read file", Path: src, Err: err}
	}

	if err := afero.WriteFile(s.Fs, dest, data, mode.Perm()); err != nil {
		return &Error{Op: "write file", Path: dest, Err: err}
	}

	return nil
}

// rewritePackageName points the copied package.json at the new project
// name so the scaffolded app is usable as-is.
func (s *Scaffolder) rewritePackageName(dest string) error {
	pkgPath := filepath.Join(dest, "package.json")

	data, err := afero.ReadFile(s.Fs, pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &Error{Op: "read file", Path: pkgPath, Err: err}
	}

	var pkg map[string]interface{}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return &Error{Op: "parse package.json", Path: pkgPath, Err: err}
	}

	pkg["name"] = ToValidPackageName(filepath.Base(dest))

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return &Error{Op: "encode package.json", Path: pkgPath, Err: err}
	}
	out = append(out, '\n')

	if err := afero.WriteFile(s.Fs, pkgPath, out, 0o644); err != nil {
		return &Error{Op: "write file", Path: pkgPath, Err: err}
	}

	return nil
}

var (
	packageNameSpaces  = regexp.MustCompile(`\s+`)
	packageNameLeading = regexp.MustCompile(`^[._]+`)
	packageNameInvalid = regexp.MustCompile(`[^a-z0-9-~]+`)
)

// ToValidPackageName converts an arbitrary directory name into a valid npm
// package name.
func ToValidPackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = packageNameSpaces.ReplaceAllString(name, "-")
	name = packageNameLeading.ReplaceAllString(name, "")
	name = packageNameInvalid.ReplaceAllString(name, "-")

	return name
}

// NextSteps prints the follow-up instructions after a successful copy. The
// cd line is omitted when the destination is the working directory itself
// and quoted when the relative path contains whitespace.
func (s *Scaffolder) NextSteps(dest string) {
	fmt.Fprintf(s.Out, "\nDone. Now run:\n\n")

	if dest != s.WorkDir {
		cd := dest
		if rel, err := filepath.Rel(s.WorkDir, dest); err == nil {
			cd = rel
		}
		if strings.ContainsAny(cd, " \t") {
			cd = fmt.Sprintf("%q", cd)
		}
		fmt.Fprintf(s.Out, "  cd %s\n", cd)
	}

	fmt.Fprintln(s.Out, "  npm install")
	fmt.Fprintln(s.Out, "  npm run dev")
	fmt.Fprintln(s.Out)
}
