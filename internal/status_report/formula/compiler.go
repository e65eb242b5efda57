package formula

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"time"

	"status-report-server/internal/infra/cache"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/conf"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"
)

const _cacheTTL = time.Hour

var _anyType = reflect.TypeOf((*any)(nil)).Elem()

type compiledStatement struct {
	statement
	program *vm.Program
}

// Script is a compiled formula. It is immutable and safe for concurrent use.
type Script struct {
	statements []compiledStatement
}

// Outcome holds the writable slots after a run.
type Outcome struct {
	Value any
	Color any
}

type Compiler struct {
	cache cache.Cache
}

// NewCompiler returns a compiler that keeps scripts in c. A nil cache
// compiles on every call.
func NewCompiler(c cache.Cache) *Compiler {
	return &Compiler{cache: c}
}

// Compile type-checks source against env. Fixed names of env cannot be
// assigned, and a local name must be assigned before it is read.
func (c *Compiler) Compile(ctx context.Context, source string, env map[string]any) (*Script, error) {
	if c.cache == nil {
		return compile(source, env)
	}

	value, err := c.cache.GetOrSet(ctx, cacheKey(source, env), _cacheTTL, func() (any, error) {
		return compile(source, env)
	})
	if err != nil {
		return nil, err
	}
	return value.(*Script), nil
}

// Evaluate compiles source and runs it against a fresh environment.
func (c *Compiler) Evaluate(ctx context.Context, source string, bindings Bindings) (Outcome, error) {
	env := bindings.Env()
	script, err := c.Compile(ctx, source, env)
	if err != nil {
		return Outcome{}, err
	}
	return script.Run(env)
}

func compile(source string, env map[string]any) (*Script, error) {
	statements, err := parse(source)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any, len(env))
	declared := map[string]reflect.Type{}
	for name, value := range env {
		if value == nil {
			declared[name] = _anyType
			continue
		}
		values[name] = value
	}

	script := &Script{statements: make([]compiledStatement, 0, len(statements))}
	for _, stmt := range statements {
		if _, fixed := env[stmt.target]; fixed && !isWritable(stmt.target) {
			return nil, newError(ErrReadOnlyBinding, stmt.line, stmt.column, "cannot assign to %q: %s", stmt.target, ErrReadOnlyBinding)
		}

		program, err := expr.Compile(stmt.expr, expr.Env(values), declare(declared))
		if err != nil {
			return nil, locate(ErrSyntax, stmt, err)
		}
		script.statements = append(script.statements, compiledStatement{statement: stmt, program: program})

		delete(values, stmt.target)
		declared[stmt.target] = resultType(program)
	}

	return script, nil
}

// declare adds names whose type is known but that have no value to
// infer it from. It must follow expr.Env.
func declare(types map[string]reflect.Type) expr.Option {
	return func(c *conf.Config) {
		for name, t := range types {
			c.Types[name] = conf.Tag{Type: t}
		}
	}
}

// resultType is the checked type of program, widened to any when the
// checker could not pin it down.
func resultType(program *vm.Program) reflect.Type {
	t := program.Node().Type()
	if t == nil || t.Kind() == reflect.Interface {
		return _anyType
	}
	return t
}

// Run executes the statements in order on a copy of env.
func (s *Script) Run(env map[string]any) (Outcome, error) {
	scope := maps.Clone(env)
	if scope == nil {
		scope = map[string]any{}
	}

	for _, stmt := range s.statements {
		out, err := expr.Run(stmt.program, scope)
		if err != nil {
			return Outcome{}, locate(ErrRuntime, stmt.statement, err)
		}
		scope[stmt.target] = out
	}

	return Outcome{Value: scope[BindingValue], Color: scope[BindingColor]}, nil
}

// locate maps an expr error onto the whole formula.
func locate(kind error, stmt statement, err error) *Error {
	var fileErr *file.Error
	if !errors.As(err, &fileErr) || fileErr.Line < 1 {
		return &Error{Line: stmt.exprLine, Column: stmt.exprColumn, Message: err.Error(), Err: kind}
	}

	line := stmt.exprLine + fileErr.Line - 1
	column := fileErr.Column + 1
	if fileErr.Line == 1 {
		column = stmt.exprColumn + fileErr.Column
	}
	return &Error{Line: line, Column: column, Message: fileErr.Message, Err: kind}
}

func cacheKey(source string, env map[string]any) string {
	h := sha256.New()
	h.Write([]byte("formula/v" + strconv.Itoa(BindingsVersion) + "\x00"))
	h.Write([]byte(source))
	for _, name := range slices.Sorted(maps.Keys(env)) {
		fmt.Fprintf(h, "\x00%s:%T", name, env[name])
	}
	return hex.EncodeToString(h.Sum(nil))
}
