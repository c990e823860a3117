// Package expr compiles CEL expressions used to derive keys from records,
// such as the deduplication key of the distinct command.
package expr

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

// RootVar is the variable each record is bound to during evaluation.
const RootVar = "_"

// Evaluator compiles CEL expressions against a shared environment.
type Evaluator struct {
	env *cel.Env
}

// Program is a compiled expression ready to evaluate against records.
type Program struct {
	source string
	prg    cel.Program
}

// NewEvaluator creates an evaluator with the common CEL extension libraries.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable(RootVar, cel.DynType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Compile parses, type-checks and plans expr.
func (e *Evaluator) Compile(expr string) (*Program, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Program{source: expr, prg: prg}, nil
}

// Source returns the expression text the program was compiled from.
func (p *Program) Source() string {
	return p.source
}

// Eval evaluates the program with data bound to RootVar and converts the
// result to plain Go values.
func (p *Program) Eval(data any) (any, error) {
	out, _, err := p.prg.Eval(map[string]any{RootVar: data})
	if err != nil {
		return nil, fmt.Errorf("eval error: %w", err)
	}
	return ToGo(out), nil
}

// ToGo converts CEL values to Go natives, recursing into lists and maps.
func ToGo(val ref.Val) any {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	case types.Null:
		return nil
	}

	return fromNative(val.Value())
}

func fromNative(v any) any {
	switch x := v.(type) {
	case ref.Val:
		return ToGo(x)
	case []ref.Val:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = ToGo(el)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = fromNative(el)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			out[k] = fromNative(el)
		}
		return out
	case map[ref.Val]ref.Val:
		out := make(map[string]any, len(x))
		for k, el := range x {
			out[fmt.Sprintf("%v", k.Value())] = ToGo(el)
		}
		return out
	default:
		return v
	}
}
