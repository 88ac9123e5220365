// Package loader turns external workload definitions into validated model
// workloads: a parsly-based parser for the plain text format and a YAML
// decoder reachable through any afs-supported URL. A workload that fails
// validation never reaches the scheduler.
package loader

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kernsim/kernsim/model"
	"github.com/kernsim/kernsim/tracing"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Service loads workload definitions.
type Service struct {
	fs afs.Service
}

// New creates a loader backed by the default afs service.
func New() *Service {
	return &Service{fs: afs.New()}
}

// Load reads a YAML workload from the specified URL. A missing extension
// defaults to .yaml; a missing name defaults to the file name.
func (s *Service) Load(ctx context.Context, URL string) (workload *model.Workload, err error) {
	ctx, span := tracing.StartSpan(ctx, "loader.Load", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"loader.url": URL})

	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load workload from %s: %w", URL, err)
	}
	workload, err = s.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workload from %s: %w", URL, err)
	}
	if workload.Name == "" {
		base := filepath.Base(URL)
		workload.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return workload, nil
}

// DecodeYAML decodes and validates a workload from YAML bytes.
func (s *Service) DecodeYAML(data []byte) (*model.Workload, error) {
	workload := &model.Workload{}
	if err := yaml.Unmarshal(data, workload); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	if err := workload.Validate(); err != nil {
		return nil, err
	}
	return workload, nil
}

// Parse reads a text workload from raw bytes (see Parse in parser.go).
func (s *Service) Parse(data []byte) (*model.Workload, error) {
	return Parse(data)
}

// Read consumes the reader fully and parses it as a text workload.
func (s *Service) Read(r io.Reader) (*model.Workload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload: %w", err)
	}
	return Parse(data)
}
