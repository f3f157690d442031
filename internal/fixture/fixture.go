// Package fixture reads the dashboard's static JSON fixtures from a data
// directory. It is the fallback tier of the checklist store and the only
// source for every other dashboard section. Each fixture is checked
// against an embedded JSON Schema before it is decoded.
package fixture

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/dashboard/internal/model"
)

// Fixture file names.
const (
	Metrics       = "metrics.json"
	Traffic       = "traffic.json"
	Categories    = "categories.json"
	Campaigns     = "campaigns.json"
	Checklist     = "checklist.json"
	ExecutionPlan = "execution-plan.json"
	Monitoring    = "monitoring.json"
)

// schemaFor maps every known fixture to its embedded schema file.
var schemaFor = map[string]string{
	Metrics:       "metrics.schema.json",
	Traffic:       "series.schema.json",
	Categories:    "series.schema.json",
	Campaigns:     "campaigns.schema.json",
	Checklist:     "checklist.schema.json",
	ExecutionPlan: "execution-plan.schema.json",
	Monitoring:    "monitoring.schema.json",
}

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBase = "https://dashboard.local/schemas/"

var (
	// ErrUnknownFixture is returned for a name outside the known set.
	ErrUnknownFixture = errors.New("unknown fixture")
	// ErrInvalid wraps JSON and schema failures.
	ErrInvalid = errors.New("invalid fixture")
)

// Names lists the known fixtures in a stable order.
func Names() []string {
	out := make([]string, 0, len(schemaFor))
	for n := range schemaFor {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Source reads fixtures from one directory.
type Source struct {
	dir     string
	schemas map[string]*jsonschema.Schema
}

// New compiles the embedded schemas. The directory is not touched until
// a fixture is read, so a missing directory surfaces per fixture.
func New(dir string) (*Source, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	files, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("read embedded schemas: %w", err)
	}
	for _, f := range files {
		b, err := schemaFS.ReadFile("schemas/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", f.Name(), err)
		}
		if err := compiler.AddResource(schemaBase+f.Name(), bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", f.Name(), err)
		}
	}

	s := &Source{dir: dir, schemas: make(map[string]*jsonschema.Schema, len(schemaFor))}
	for name, file := range schemaFor {
		sch, err := compiler.Compile(schemaBase + file)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", file, err)
		}
		s.schemas[name] = sch
	}
	return s, nil
}

// Dir is the data directory.
func (s *Source) Dir() string { return s.dir }

// Path returns the on-disk path of a fixture.
func (s *Source) Path(name string) string { return filepath.Join(s.dir, name) }

// Read returns the raw bytes of a fixture after validating them.
func (s *Source) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sch, ok := s.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFixture, name)
	}
	b, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalid, name, schemaMessage(err))
	}
	return b, nil
}

// Decode reads a fixture into v.
func (s *Source) Decode(ctx context.Context, name string, v any) error {
	b, err := s.Read(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
	}
	return nil
}

// Checklist re-reads checklist.json on every call; callers may mutate the
// result.
func (s *Source) Checklist(ctx context.Context) ([]model.ChecklistItem, error) {
	items := []model.ChecklistItem{}
	if err := s.Decode(ctx, Checklist, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Source) Metrics(ctx context.Context) ([]model.Metric, error) {
	var out []model.Metric
	if err := s.Decode(ctx, Metrics, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) Traffic(ctx context.Context) (model.Series, error) {
	var out model.Series
	err := s.Decode(ctx, Traffic, &out)
	return out, err
}

func (s *Source) Categories(ctx context.Context) (model.Series, error) {
	var out model.Series
	err := s.Decode(ctx, Categories, &out)
	return out, err
}

func (s *Source) Campaigns(ctx context.Context) (model.Campaign, error) {
	var out model.Campaign
	err := s.Decode(ctx, Campaigns, &out)
	return out, err
}

func (s *Source) ExecutionPlan(ctx context.Context) ([]model.Phase, error) {
	var out []model.Phase
	if err := s.Decode(ctx, ExecutionPlan, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) Monitoring(ctx context.Context) (model.Monitoring, error) {
	var out model.Monitoring
	err := s.Decode(ctx, Monitoring, &out)
	return out, err
}

// Problem is one fixture that failed validation.
type Problem struct {
	Name string
	Err  error
}

// Validate checks every known fixture and returns the failures, if any.
func (s *Source) Validate(ctx context.Context) []Problem {
	var out []Problem
	for _, name := range Names() {
		if _, err := s.Read(ctx, name); err != nil {
			out = append(out, Problem{Name: name, Err: err})
		}
	}
	return out
}

// schemaMessage flattens a validation error into "path: message" leaves.
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	collectLeaves(ve, &msgs)
	return strings.Join(msgs, "; ")
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+ve.Message)
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}
