// Package script replays a list of operations, described in YAML, against a list of strings.
package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teenjuna/arraylist"
	"github.com/teenjuna/arraylist/codec/json"
	yamlcodec "github.com/teenjuna/arraylist/codec/yaml"
	"github.com/teenjuna/arraylist/growth"
)

var (
	ErrInvalidScript = errors.New("invalid script")
	ErrInvalidOp     = errors.New("invalid op")
)

// Script is a sequence of operations applied to a fresh list.
//
// Example:
//
//	capacity: 2
//	growth: linear:4
//	ops:
//	  - add 5
//	  - add 6
//	  - insert 1 7
//	  - remove-at 0
//	  - print
type Script struct {
	Capacity *int     `yaml:"capacity,omitempty"`
	Growth   string   `yaml:"growth,omitempty"`
	Ops      []string `yaml:"ops"`

	policy arraylist.GrowthPolicy
}

// Load parses and validates a script.
func Load(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	if s.Capacity != nil && *s.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity can't be < 0", ErrInvalidScript)
	}

	policy, err := parseGrowth(s.Growth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	s.policy = policy

	return &s, nil
}

// Run applies the operations in order to a new list, writing one "<op> -> <result>" line per
// operation to w, and returns the resulting list.
//
// Errors returned by the list are written as results and don't stop the run. A malformed
// operation stops the run with [ErrInvalidOp].
func (s *Script) Run(w io.Writer) (*arraylist.List[string], error) {
	list := arraylist.New[string](s.configure)

	for i, op := range s.Ops {
		result, err := apply(list, strings.Fields(op))
		if err != nil {
			return list, fmt.Errorf("op %d %q: %w", i+1, op, err)
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", op, result); err != nil {
			return list, fmt.Errorf("write result: %w", err)
		}
	}

	return list, nil
}

func (s *Script) configure(c *arraylist.Config) {
	if s.Capacity != nil {
		c.Capacity(*s.Capacity)
	}
	if s.policy != nil {
		c.Growth(s.policy)
	}
}

// Encode formats the list as "text", "json" or "yaml".
func Encode(list *arraylist.List[string], format string) ([]byte, error) {
	switch format {
	case "text", "":
		return []byte(list.String() + "\n"), nil
	case "json":
		return list.Encode(json.New[string]())
	case "yaml":
		return list.Encode(yamlcodec.New[string]())
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func apply(list *arraylist.List[string], args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidOp)
	}

	name, args := args[0], args[1:]
	switch name {
	case "add":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		return strconv.FormatBool(list.Add(args[0])), nil

	case "insert":
		if err := arity(args, 2); err != nil {
			return "", err
		}
		index, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		return result("ok", list.Insert(index, args[1])), nil

	case "set":
		if err := arity(args, 2); err != nil {
			return "", err
		}
		index, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		old, err := list.Set(index, args[1])
		return result(old, err), nil

	case "get":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		index, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		v, err := list.Get(index)
		return result(v, err), nil

	case "remove-at":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		index, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		v, err := list.RemoveAt(index)
		return result(v, err), nil

	case "remove":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		return strconv.FormatBool(list.Remove(args[0])), nil

	case "index-of":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		return strconv.Itoa(list.IndexOf(args[0])), nil

	case "contains":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		return strconv.FormatBool(list.Contains(args[0])), nil

	case "ensure-capacity":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		n, err := parseInt(args[0])
		if err != nil {
			return "", err
		}
		list.EnsureCapacity(n)
		return strconv.Itoa(list.Cap()), nil

	case "clear":
		if err := arity(args, 0); err != nil {
			return "", err
		}
		list.Clear()
		return "ok", nil

	case "size":
		if err := arity(args, 0); err != nil {
			return "", err
		}
		return strconv.Itoa(list.Size()), nil

	case "capacity":
		if err := arity(args, 0); err != nil {
			return "", err
		}
		return strconv.Itoa(list.Cap()), nil

	case "print":
		if err := arity(args, 0); err != nil {
			return "", err
		}
		return list.String(), nil

	case "drain":
		if err := arity(args, 0); err != nil {
			return "", err
		}
		drained := arraylist.New[string]()
		it := list.Iterator()
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				return result("", err), nil
			}
			if err := it.Remove(); err != nil {
				return result("", err), nil
			}
			drained.Add(v)
		}
		return drained.String(), nil

	default:
		return "", fmt.Errorf("%w: unknown op %q", ErrInvalidOp, name)
	}
}

func result(v string, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return v
}

func arity(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalidOp, n, len(args))
	}
	return nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidOp, err)
	}
	return n, nil
}

func parseGrowth(s string) (arraylist.GrowthPolicy, error) {
	name, param, _ := strings.Cut(s, ":")
	switch name {
	case "":
		return nil, nil
	case "doubling":
		return growth.Doubling(), nil
	case "linear":
		step, err := strconv.Atoi(param)
		if err != nil {
			return nil, fmt.Errorf("linear step: %w", err)
		}
		if step < 1 {
			return nil, errors.New("linear step can't be < 1")
		}
		return growth.Linear(step), nil
	case "factor":
		factor, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return nil, fmt.Errorf("factor: %w", err)
		}
		if factor <= 1 {
			return nil, errors.New("factor can't be <= 1")
		}
		return growth.Factor(factor), nil
	default:
		return nil, fmt.Errorf("unknown growth %q", s)
	}
}
