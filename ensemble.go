package cdoexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kiteco/cdoexpr/decisiontree"
	"github.com/kiteco/cdoexpr/errors"
)

// Mode selects how the trees of an ensemble are combined.
type Mode int

// The ensemble modes.
const (
	// Averaging divides the sum of the tree outputs by the tree count (random forests).
	Averaging Mode = iota
	// Boosting sums the tree outputs (gradient boosting).
	Boosting
	// MajorityVote picks the most frequent tree output (classification forests).
	MajorityVote
)

var modeNames = map[Mode]string{
	Averaging:    "averaging",
	Boosting:     "boosting",
	MajorityVote: "majority-vote",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name as printed by Mode.String. "voting" is accepted
// as a short form of "majority-vote".
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "voting" {
		return MajorityVote, nil
	}
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, errors.Reasonf(errors.UnknownMode, "%q is not one of averaging, boosting, majority-vote", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be read from flags and recipes.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// TreeVar is the name of the variable holding the output of tree i.
func TreeVar(i int) string {
	return "_VALUE" + strconv.Itoa(i)
}

// TreeExpr translates a single tree dump into a nested ternary expression.
func TreeExpr(dump string) (string, error) {
	root, err := decisiontree.BuildDump(dump)
	if err != nil {
		return "", err
	}
	return Construct(root), nil
}

// Combine emits the statements assigning output from the per-tree variables.
func Combine(vars []string, mode Mode, output string) (string, error) {
	if len(vars) == 0 {
		return "", errors.Reasonf(errors.EmptyInput, "nothing to combine into %s", output)
	}
	switch mode {
	case Averaging:
		return Assign(output, fmt.Sprintf("(%s)/%d", strings.Join(vars, "+"), len(vars))), nil
	case Boosting:
		return Assign(output, strings.Join(vars, "+")), nil
	case MajorityVote:
		return MooreVoting(vars, output)
	default:
		return "", errors.Reasonf(errors.UnknownMode, "mode %s", mode)
	}
}

// Ensemble translates every dump into a _VALUE<i>=<expr>; statement and
// appends the statements combining them into output.
func Ensemble(dumps []string, mode Mode, output string) (string, error) {
	return ensemble(dumps, mode, output, TreeExpr)
}

func ensemble(dumps []string, mode Mode, output string, treeExpr func(string) (string, error)) (string, error) {
	if len(dumps) == 0 {
		return "", errors.Reasonf(errors.EmptyInput, "ensemble has no trees")
	}

	var b strings.Builder
	vars := make([]string, 0, len(dumps))
	for i, dump := range dumps {
		expr, err := treeExpr(dump)
		if err != nil {
			return "", errors.Wrapf(err, "tree %d", i)
		}
		v := TreeVar(i)
		vars = append(vars, v)
		b.WriteString(Assign(v, expr))
	}

	combined, err := Combine(vars, mode, output)
	if err != nil {
		return "", err
	}
	b.WriteString(combined)
	return b.String(), nil
}
