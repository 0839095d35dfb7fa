package core

import (
	"github.com/google/cel-go/cel"
	"github.com/vuuvv/errors"
)

// Names available to check expressions.
var exprVariables = []string{"value", "versions", "packets", "depth", "bits", "padding", "version", "op"}

type CelEvaluator struct {
	expr string
	prg  cel.Program
}

func CompileExpression(expr string) (*CelEvaluator, error) {
	opts := []cel.EnvOption{
		cel.CrossTypeNumericComparisons(true),
		cel.Variable("report", cel.MapType(cel.StringType, cel.DynType)), // every report field
	}
	for _, name := range exprVariables {
		opts = append(opts, cel.Variable(name, cel.DynType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrapf(issues.Err(), "compile expression %q", expr)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &CelEvaluator{expr: expr, prg: prg}, nil
}

func (e *CelEvaluator) String() string {
	return e.expr
}

func (e *CelEvaluator) Execute(vars map[string]any) (any, error) {
	input := make(map[string]any, len(vars)+1)
	for k, v := range vars {
		input[k] = v
	}
	input["report"] = vars
	out, _, err := e.prg.Eval(input)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out.Value(), nil
}

func (e *CelEvaluator) ExecuteBool(vars map[string]any) (bool, error) {
	res, err := e.Execute(vars)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, errors.Errorf("expression %q returned %T, not a bool", e.expr, res)
	}
	return b, nil
}
