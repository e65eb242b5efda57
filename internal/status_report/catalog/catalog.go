// Package catalog loads the default indicator set installed on new status
// reports from YAML.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	shareddomain "status-report-server/internal/shared_kernel/domain"
	"status-report-server/internal/status_report/domain"
	"status-report-server/internal/status_report/formula"
	"status-report-server/internal/status_report/usecases"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

const SupportedVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported catalog version")
	ErrDuplicateName      = errors.New("duplicate indicator name in catalog")
)

type Entry struct {
	Name      string `yaml:"name"`
	Sequence  int    `yaml:"sequence"`
	ValueKind string `yaml:"value_kind"`
	Formula   string `yaml:"formula"`
}

type Catalog struct {
	Version int     `yaml:"version"`
	Entries []Entry `yaml:"indicators"`
}

var _ usecases.IndicatorCatalog = (*Catalog)(nil)

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Errorf("embedded catalog: %w", err))
	}
	return c
}

// Load reads the catalog at path. An empty path selects the default one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("reading indicator catalog", slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var c Catalog
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if c.Version != SupportedVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}

	seen := make(map[string]struct{}, len(c.Entries))
	for i, entry := range c.Entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("entry %d: %w", i+1, domain.ErrIndicatorNameRequired)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}

		if _, err := domain.ParseValueKind(entry.ValueKind); err != nil {
			return fmt.Errorf("indicator %q: %w", name, err)
		}
	}
	return nil
}

// Indicators builds fresh indicators attached to reportID, one per entry.
func (c *Catalog) Indicators(reportID shareddomain.ID) ([]domain.Indicator, error) {
	indicators := make([]domain.Indicator, 0, len(c.Entries))
	for _, entry := range c.Entries {
		kind, err := domain.ParseValueKind(entry.ValueKind)
		if err != nil {
			return nil, err
		}

		builder := domain.NewIndicatorBuilder().
			WithName(strings.TrimSpace(entry.Name)).
			WithReportID(reportID).
			WithValueKind(kind).
			WithFormula(entry.Formula)
		if entry.Sequence != 0 {
			builder = builder.WithSequence(entry.Sequence)
		}

		indicator, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("indicator %q: %w", entry.Name, err)
		}
		indicators = append(indicators, indicator)
	}
	return indicators, nil
}

type Issue struct {
	Indicator string
	Err       error
}

// Lint evaluates every formula against an empty project and returns the
// entries that fail to run or yield a value of the wrong kind.
func (c *Catalog) Lint(ctx context.Context, compiler *formula.Compiler) []Issue {
	bindings := formula.Bindings{Date: time.Now().UTC()}

	var issues []Issue
	for _, entry := range c.Entries {
		source := entry.Formula
		if strings.TrimSpace(source) == "" {
			source = domain.DefaultFormula
		}
		outcome, err := compiler.Evaluate(ctx, source, bindings)
		if err != nil {
			issues = append(issues, Issue{Indicator: entry.Name, Err: err})
			continue
		}

		kind, _ := domain.ParseValueKind(entry.ValueKind)
		probe := domain.IndicatorValue{ValueKind: kind}
		if err := probe.SetValue(outcome.Value); err != nil {
			issues = append(issues, Issue{Indicator: entry.Name, Err: err})
		}
	}
	return issues
}
