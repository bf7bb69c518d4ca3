// Package sizequery parses and evaluates size filter expressions.
//
// An expression is three space-separated tokens: operator, amount, unit.
//
//	$gt 0 $BYTE   larger than zero bytes
//	$eq 2 $KB     exactly 2 KiB
//	$lt 1.5 $GB   smaller than 1.5 GiB
//
// Units are binary: $KB is 1024 bytes.
package sizequery

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ivoronin/filequery/internal/types"
)

// Default is the expression that matches every non-empty file. Queries
// using it skip size filtering entirely.
const Default = "$gt 0 $BYTE"

// Operator compares a file size against the query amount.
type Operator int

const (
	GreaterThan Operator = iota
	Equal
	LessThan
)

var operatorTokens = map[string]Operator{
	"$gt": GreaterThan,
	"$eq": Equal,
	"$lt": LessThan,
}

func (o Operator) String() string {
	switch o {
	case GreaterThan:
		return "$gt"
	case Equal:
		return "$eq"
	case LessThan:
		return "$lt"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Unit is the scale the amount is expressed in.
type Unit int

const (
	Byte Unit = iota
	KB
	MB
	GB
)

var unitTokens = map[string]Unit{
	"$BYTE": Byte,
	"$KB":   KB,
	"$MB":   MB,
	"$GB":   GB,
}

func (u Unit) String() string {
	switch u {
	case Byte:
		return "$BYTE"
	case KB:
		return "$KB"
	case MB:
		return "$MB"
	case GB:
		return "$GB"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Divisor returns the number of bytes in one unit.
func (u Unit) Divisor() float64 {
	return math.Pow(1024, float64(u))
}

// Query is a parsed size expression.
type Query struct {
	Operator Operator
	Amount   float64
	Unit     Unit
}

// Parse converts an expression into a Query. Tokens are separated by
// exactly one space; any other shape is ErrInvalidSizeQuery.
func Parse(expr string) (Query, error) {
	tokens := strings.Split(expr, " ")
	if len(tokens) != 3 {
		return Query{}, fmt.Errorf("%w: %q: want \"<operator> <amount> <unit>\"", types.ErrInvalidSizeQuery, expr)
	}

	op, ok := operatorTokens[tokens[0]]
	if !ok {
		return Query{}, fmt.Errorf("%w: %q: unknown operator %q", types.ErrInvalidSizeQuery, expr, tokens[0])
	}

	amount, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil || amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Query{}, fmt.Errorf("%w: %q: amount %q is not a non-negative number", types.ErrInvalidSizeQuery, expr, tokens[1])
	}

	unit, ok := unitTokens[tokens[2]]
	if !ok {
		return Query{}, fmt.Errorf("%w: %q: unknown unit %q", types.ErrInvalidSizeQuery, expr, tokens[2])
	}

	return Query{Operator: op, Amount: amount, Unit: unit}, nil
}

// MustParse is like Parse but panics on error. For constant expressions.
func MustParse(expr string) Query {
	q, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return q
}

// Match reports whether a file of sizeBytes satisfies the query.
func (q Query) Match(sizeBytes int64) bool {
	size := float64(sizeBytes) / q.Unit.Divisor()
	switch q.Operator {
	case GreaterThan:
		return size > q.Amount
	case Equal:
		return size == q.Amount
	case LessThan:
		return size < q.Amount
	}
	return false
}

// IsDefault reports whether q parses to the same query as Default, so
// "$gt 0.0 $BYTE" counts as the default while "$gt 0 $KB" does not.
func (q Query) IsDefault() bool {
	return q == MustParse(Default)
}

// Bytes returns the threshold in bytes.
func (q Query) Bytes() float64 {
	return q.Amount * q.Unit.Divisor()
}

// String renders the canonical expression.
func (q Query) String() string {
	return q.Operator.String() + " " + strconv.FormatFloat(q.Amount, 'f', -1, 64) + " " + q.Unit.String()
}

// Describe renders the query for humans, e.g. "< 1.0 GiB".
func (q Query) Describe() string {
	symbol := map[Operator]string{GreaterThan: ">", Equal: "=", LessThan: "<"}[q.Operator]
	return symbol + " " + humanize.IBytes(uint64(q.Bytes()))
}

// Sizer reports a file's byte size.
type Sizer interface {
	Size(path string) (int64, error)
}

// Evaluate stats path once and applies q to its size.
func Evaluate(path string, q Query, s Sizer) (bool, error) {
	size, err := s.Size(path)
	if err != nil {
		return false, err
	}
	return q.Match(size), nil
}
