// Package profilecheck scores employee profiles stored as YAML files.
package profilecheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/scoring"
	"profile_validator/pkg/contextx"
	"profile_validator/pkg/logx"
	"profile_validator/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ErrInvalidProfiles reports that at least one checked profile is invalid.
var ErrInvalidProfiles = errors.New("invalid profiles found")

var errNoDocuments = errors.New("no profile documents")

// Document is one YAML document of a profile file. A file may hold several
// documents separated by "---".
type Document struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Bio      string `yaml:"bio"`
	Skills   string `yaml:"skills"`
	Password string `yaml:"password"`
}

func (d Document) profile() entity.Profile {
	return entity.Profile{
		Name:   d.Name,
		Email:  d.Email,
		Phone:  d.Phone,
		Bio:    d.Bio,
		Skills: d.Skills,
	}
}

type validator interface {
	ValidateAll(ctx context.Context, p entity.Profile) entity.ProfileReport
	ValidateBioWithAI(ctx context.Context, bio string) entity.BioReport
	CheckPassword(ctx context.Context, password string) entity.PasswordStrength
}

// Report is the outcome for one profile document.
type Report struct {
	Path     string
	Index    int
	Profile  entity.ProfileReport
	Analysis *entity.Analysis
	Password *entity.PasswordStrength
}

func (r Report) Valid() bool {
	return r.Profile.Summary.Valid
}

type Checker struct {
	validator validator
	withAI    bool
}

func NewChecker(validator validator) Checker {
	return Checker{
		validator: validator,
	}
}

// WithAI makes the checker rescore bios through the text quality oracle.
func (c Checker) WithAI(enabled bool) Checker {
	c.withAI = enabled
	return c
}

// Check expands patterns, loads every matching file and scores each
// profile in it. Reports are ordered by path, then by position in the file.
func (c Checker) Check(ctx context.Context, patterns []string) ([]Report, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}

	files, err := lox.MapErr(paths, Load)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	var reports []Report

	for i, docs := range files {
		for j, doc := range docs {
			reports = append(reports, c.check(ctx, paths[i], j, doc))
		}
	}

	return reports, nil
}

func (c Checker) check(ctx context.Context, path string, index int, doc Document) Report {
	report := Report{
		Path:    path,
		Index:   index,
		Profile: c.validator.ValidateAll(ctx, doc.profile()),
	}

	if c.withAI {
		bio := c.validator.ValidateBioWithAI(ctx, doc.Bio)

		report.Profile.Results[entity.FieldBio] = bio.Result
		report.Profile.Summary = scoring.Aggregate(report.Profile.Results)
		report.Analysis = bio.Analysis
	}

	if doc.Password != "" {
		report.Password = lo.ToPtr(c.validator.CheckPassword(ctx, doc.Password))
	}

	logger(ctx).Debug(
		"profile checked",
		slog.String(logx.FieldPath, path),
		slog.Int("index", index),
		slog.Int(logx.FieldScore, report.Profile.Summary.Score),
	)

	return report
}

// Expand resolves doublestar patterns (profiles/**/*.yaml) to a sorted,
// de-duplicated list of files. A pattern matching nothing is an error.
func Expand(patterns []string) ([]string, error) {
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("doublestar.FilepathGlob(%q): %w", pattern, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("no profile files match %q", pattern) //nolint:err113
		}

		paths = append(paths, matches...)
	}

	slices.Sort(paths)

	return slices.Compact(paths), nil
}

// Load decodes every YAML document in the file at path.
func Load(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	docs, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return docs, nil
}

func decode(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document

	for {
		var doc Document

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			if len(docs) == 0 {
				return nil, errNoDocuments
			}

			return docs, nil
		}

		if err != nil {
			return nil, fmt.Errorf("yaml.Decode: %w", err)
		}

		// a bare "---" decodes to an empty document
		if doc != (Document{}) {
			docs = append(docs, doc)
		}
	}
}
