// Package evaluator compiles the body of a scalar expression (as typed in a
// note) into a function of x.
package evaluator

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

var (
	// A number literal that does not continue an identifier (the 10 in
	// log10), followed by a name or a group: "2x", "1e2 x", "3(x+1)".
	reImplicitNum   = regexp.MustCompile(`(^|[^\w.])(\d+(?:\.\d*)?(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)\s*([a-zA-Z(])`)
	reImplicitParen = regexp.MustCompile(`\)\s*([a-zA-Z0-9(])`)
	// A function applied without parentheses: "\sin x", "\log 2x".
	reBareCall = regexp.MustCompile(`(sin|cos|tan|sqrt|log10|log|exp)\s+([a-zA-Z0-9.]+)`)

	latexWords = strings.NewReplacer(
		`\left`, "",
		`\right`, "",
		`\cdot`, "*",
		`\times`, "*",
		`\div`, "/",
		`\pi`, "pi",
		`\sin`, "sin",
		`\cos`, "cos",
		`\tan`, "tan",
		`\ln`, "log",
		`\log`, "log10",
		`\exp`, "exp",
		`\,`, "",
		`\ `, "",
	)

	unary = map[string]func(float64) float64{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"sqrt":  math.Sqrt,
		"log":   math.Log,
		"log10": math.Log10,
		"exp":   math.Exp,
	}
)

// Func is a compiled scalar expression.
type Func struct {
	src     string
	program *vm.Program
}

// Compile turns "f(x) = x^2" (or just "x^2") into a Func.
func Compile(expression string) (*Func, error) {
	src := Translate(expression)
	if src == "" {
		return nil, syntaxError(expression, fmt.Errorf("empty expression"))
	}

	opts := []expr.Option{expr.Env(env(0))}
	for name, fn := range unary {
		opts = append(opts, expr.Function(name, wrap(name, fn)))
	}

	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, syntaxError(expression, err)
	}
	return &Func{src: src, program: program}, nil
}

// Source returns the translated expression that was compiled.
func (f *Func) Source() string { return f.src }

// Eval computes f(x).
func (f *Func) Eval(x float64) (float64, error) {
	out, err := expr.Run(f.program, env(x))
	if err != nil {
		return 0, &domain.OpError{Op: "evaluator.eval", Kind: domain.KindExecution, Err: err}
	}
	y, ok := toFloat(out)
	if !ok {
		return 0, &domain.OpError{
			Op:   "evaluator.eval",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s: result %v is not a number", f.src, out),
		}
	}
	return y, nil
}

// MustEval is Eval for plotting: evaluation errors become NaN, which
// plotters skip.
func (f *Func) MustEval(x float64) float64 {
	y, err := f.Eval(x)
	if err != nil {
		return math.NaN()
	}
	return y
}

// Translate rewrites the LaTeX subset found in notes into expr syntax.
// The left-hand side of a definition ("f(x) =") is dropped.
func Translate(expression string) string {
	s := strings.TrimSpace(domain.Normalize(expression))
	if _, rhs, ok := strings.Cut(s, "="); ok {
		s = rhs
	}

	s = rewriteCommand(s, `\frac`, 2, func(args []string) string {
		return "((" + args[0] + ")/(" + args[1] + "))"
	})
	s = rewriteCommand(s, `\sqrt`, 1, func(args []string) string {
		return "sqrt(" + args[0] + ")"
	})
	s = latexWords.Replace(s)
	s = strings.NewReplacer("{", "(", "}", ")").Replace(s)
	s = reBareCall.ReplaceAllString(s, "$1($2)")
	s = reImplicitNum.ReplaceAllString(s, "$1$2*$3")
	s = reImplicitParen.ReplaceAllString(s, ")*$1")
	return strings.TrimSpace(s)
}

// rewriteCommand replaces cmd{a}{b}... (n brace groups) using fn.
// Unbalanced groups are left as they are.
func rewriteCommand(s, cmd string, n int, fn func([]string) string) string {
	for {
		i := strings.Index(s, cmd)
		if i < 0 {
			return s
		}
		pos := i + len(cmd)
		args := make([]string, 0, n)
		for len(args) < n {
			arg, next, ok := braceGroup(s, pos)
			if !ok {
				return s
			}
			args = append(args, rewriteCommand(arg, cmd, n, fn))
			pos = next
		}
		s = s[:i] + fn(args) + s[pos:]
	}
}

func braceGroup(s string, pos int) (string, int, bool) {
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	if pos >= len(s) || s[pos] != '{' {
		return "", pos, false
	}
	depth := 0
	for j := pos; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[pos+1 : j], j + 1, true
			}
		}
	}
	return "", pos, false
}

func env(x float64) map[string]any {
	return map[string]any{
		"x":  x,
		"pi": math.Pi,
		"e":  math.E,
	}
}

func wrap(name string, fn func(float64) float64) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(params))
		}
		v, ok := toFloat(params[0])
		if !ok {
			return nil, fmt.Errorf("%s: argument %v is not a number", name, params[0])
		}
		return fn(v), nil
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	default:
		return 0, false
	}
}

func syntaxError(expression string, err error) error {
	return &domain.OpError{
		Op:   "evaluator.compile",
		Kind: domain.KindInvalidSelection,
		Err:  fmt.Errorf("%q: %v: %w", strings.TrimSpace(expression), err, domain.ErrInvalidSelection),
	}
}
