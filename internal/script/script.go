package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/calckit/pkg/calculator"
	"github.com/dmitrymomot/calckit/pkg/sanitizer"
)

// Step kinds.
const (
	KindOp        = "op"
	KindCheck     = "check"
	KindTransform = "transform"
)

// Check and transform names accepted in scripts.
const (
	CheckEmail     = "email"
	CheckNumeric   = "numeric"
	TransformUpper = "upper"
)

var normalizeName = sanitizer.Compose(sanitizer.Trim, strings.ToLower)

// Step is one entry of a script. Exactly one of Op, Check or Transform is set.
// Args belongs to op steps only and Value to check and transform steps only.
//
//	- op: divide
//	  args: [5, 3]
//	- check: email
//	  value: user@mail.co.uk
//	- transform: upper
//	  value: hello
type Step struct {
	Op        string    `yaml:"op,omitempty"`
	Args      []float64 `yaml:"args,omitempty"`
	Check     string    `yaml:"check,omitempty"`
	Transform string    `yaml:"transform,omitempty"`
	Value     string    `yaml:"value,omitempty"`
}

// Kind reports which of KindOp, KindCheck or KindTransform the step is.
func (s Step) Kind() string {
	switch {
	case s.Op != "":
		return KindOp
	case s.Check != "":
		return KindCheck
	default:
		return KindTransform
	}
}

// Name returns the operation, check or transform name.
func (s Step) Name() string {
	switch s.Kind() {
	case KindOp:
		return s.Op
	case KindCheck:
		return s.Check
	default:
		return s.Transform
	}
}

func (s Step) validate() error {
	set := 0
	for _, v := range []string{s.Op, s.Check, s.Transform} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of op, check or transform must be set, got %d", set)
	}

	switch s.Kind() {
	case KindOp:
		op, err := calculator.ParseOperation(s.Op)
		if err != nil {
			return err
		}
		if len(s.Args) != op.Arity() {
			return fmt.Errorf("%s expects %d args, got %d", op, op.Arity(), len(s.Args))
		}
	case KindCheck:
		if s.Check != CheckEmail && s.Check != CheckNumeric {
			return errors.Join(ErrUnknownCheck, fmt.Errorf("check %q", s.Check))
		}
	case KindTransform:
		if s.Transform != TransformUpper {
			return errors.Join(ErrUnknownTransform, fmt.Errorf("transform %q", s.Transform))
		}
	}
	if s.Kind() != KindOp && len(s.Args) > 0 {
		return errors.New("args are only valid on op steps")
	}
	if s.Kind() == KindOp && s.Value != "" {
		return errors.New("value is only valid on check and transform steps")
	}
	return nil
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes a YAML script and validates every step. The document is
// either a mapping with a steps key or a bare sequence of steps.
// Unknown keys are rejected.
func Parse(ctx context.Context, r io.Reader) (*Script, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyScript
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	var target any = &s
	if root.Content[0].Kind == yaml.SequenceNode {
		target = &s.Steps
	}
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	for i := range s.Steps {
		st := &s.Steps[i]
		st.Check = normalizeName(st.Check)
		st.Transform = normalizeName(st.Transform)
		if err := st.validate(); err != nil {
			return nil, errors.Join(ErrInvalidStep, fmt.Errorf("step %d: %w", i+1, err))
		}
	}

	return &s, nil
}
