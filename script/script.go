package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eaugeas/arboretum/container/tree"
	errs "github.com/eaugeas/arboretum/errors"
	"github.com/eaugeas/arboretum/logs"
	"github.com/pkg/errors"
)

const (
	// ValueTypeInt makes scripts operate on a tree of integers
	ValueTypeInt = "int"

	// ValueTypeString makes scripts operate on a tree of strings
	ValueTypeString = "string"
)

const (
	opInsert   = "insert"
	opContains = "contains"
	opRemove   = "remove"
	opLen      = "len"
)

// executor applies a single operation to a tree and returns
// the line to write as result, if any
type executor interface {
	Exec(op string, args []string) (string, bool, error)
}

type treeExecutor[V any] struct {
	tree  *tree.Tree[V]
	parse func(string) (V, error)
}

func (e *treeExecutor[V]) value(op string, args []string) (V, error) {
	var zero V
	if len(args) != 1 {
		return zero, errs.NewInvalidArgument(
			fmt.Sprintf("%s expects 1 argument but got %d", op, len(args)))
	}

	v, err := e.parse(args[0])
	if err != nil {
		return zero, errs.NewInvalidArgument(
			fmt.Sprintf("%s cannot parse value %q", op, args[0]))
	}

	return v, nil
}

func (e *treeExecutor[V]) Exec(op string, args []string) (string, bool, error) {
	switch op {
	case opInsert:
		v, err := e.value(op, args)
		if err != nil {
			return "", false, err
		}
		e.tree.Insert(v)
		return "", false, nil

	case opContains:
		v, err := e.value(op, args)
		if err != nil {
			return "", false, err
		}
		return strconv.FormatBool(e.tree.Contains(v)), true, nil

	case opRemove:
		v, err := e.value(op, args)
		if err != nil {
			return "", false, err
		}
		return strconv.FormatBool(e.tree.Remove(v)), true, nil

	case opLen:
		if len(args) != 0 {
			return "", false, errs.NewInvalidArgument(
				fmt.Sprintf("%s expects no arguments but got %d", op, len(args)))
		}
		return strconv.Itoa(e.tree.Len()), true, nil

	default:
		return "", false, errs.NewUnknownOperation(op)
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

// RunnerProps are the required properties to create
// a new Runner instance
type RunnerProps struct {
	Logger    logs.Logger
	ValueType string
}

// Runner replays scripts of tree operations. A script has one
// operation per line:
//
//	insert <value>
//	contains <value>
//	remove <value>
//	len
//
// Blank lines and lines starting with # are ignored.
type Runner struct {
	logger    logs.Logger
	valueType string
	create    func() executor
}

// NewRunner creates a new Runner for the configured value type
func NewRunner(props RunnerProps) (*Runner, error) {
	var create func() executor

	switch props.ValueType {
	case ValueTypeInt:
		create = func() executor {
			return &treeExecutor[int]{tree: tree.NewOrdered[int](), parse: strconv.Atoi}
		}
	case ValueTypeString:
		create = func() executor {
			return &treeExecutor[string]{tree: tree.NewOrdered[string](), parse: parseString}
		}
	default:
		return nil, errs.NewInvalidValueType(props.ValueType)
	}

	return &Runner{logger: props.Logger, valueType: props.ValueType, create: create}, nil
}

// Run executes all the operations read from r against a new
// empty tree and writes the result of contains, remove and len
// to w, one per line
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	exec := r.create()
	scanner := bufio.NewScanner(in)
	line := 0

	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		op := strings.ToLower(fields[0])
		res, ok, err := exec.Exec(op, fields[1:])
		if err != nil {
			code, _ := errs.Code(err)
			r.logger.Warn(ctx, "operation failed", logs.MapFields{
				"line":        line,
				"op":          op,
				"error_code":  code,
				"description": err.Error(),
			})
			return errors.Wrapf(err, "line %d", line)
		}

		r.logger.Debug(ctx, "operation", logs.MapFields{
			"line":   line,
			"op":     op,
			"args":   fields[1:],
			"result": res,
		})

		if ok {
			if _, err := fmt.Fprintln(out, res); err != nil {
				return errors.Wrap(err, "failed to write result")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read script")
	}

	r.logger.Info(ctx, "script completed", logs.MapFields{
		"lines":      line,
		"value_type": r.valueType,
	})

	return nil
}
