// Package filter selects list results client-side with expr-lang
// expressions evaluated against each item's wire fields, e.g.
//
//	AccountStage == 3 && hasPrefix(lower(Name), "acme")
//
// Substring tests use the infix operator: Name contains "labs".
package filter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
)

// Filter is a compiled boolean expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompilationError reports an expression that could not be compiled.
type CompilationError struct {
	Expression string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compiling filter %q: %v", e.Expression, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Compile compiles expression. Unknown identifiers evaluate to nil so one
// expression can be applied to any resource type.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Err: constants.ErrEmptyExpression}
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Err: err}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against item.
func (f *Filter) Match(item any) (bool, error) {
	env, err := environment(item)
	if err != nil {
		return false, err
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.expression, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, constants.ErrNotBoolExpression
	}

	return matched, nil
}

// Apply returns the items f matches. A nil filter matches everything.
func Apply[T any](f *Filter, items []T) ([]T, error) {
	if f == nil {
		return items, nil
	}

	matched := make([]T, 0, len(items))

	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, item)
		}
	}

	return matched, nil
}

// environment exposes item's wire fields as variables next to the helpers.
func environment(item any) (map[string]any, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding filter input: %w", err)
	}

	fields := make(map[string]any)

	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, fmt.Errorf("decoding filter input: %w", err)
	}

	env := helpers()
	for name, value := range fields {
		env[name] = value
	}

	return env, nil
}

func helpers() map[string]any {
	return map[string]any{
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"since":     since,
	}
}

// since returns the days elapsed since an RFC 3339 timestamp, or -1 when
// the value is not a timestamp.
func since(value any) float64 {
	text, ok := value.(string)
	if !ok {
		return -1
	}

	stamp, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return -1
	}

	return time.Since(stamp).Hours() / 24
}
