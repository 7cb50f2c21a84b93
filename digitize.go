package cdoexpr

import (
	"fmt"
	"strconv"

	"github.com/kiteco/cdoexpr/errors"
	"github.com/shopspring/decimal"
)

// Digitize returns an expression evaluating to the index of the bin varname
// falls into, like numpy.digitize. When mapIndices is given the expression
// evaluates to mapIndices[index] instead; it must hold len(bins)+1 entries.
//
// With right unset a value equal to an edge belongs to the bin above it
// (bins[i-1] <= x < bins[i]); with right set it belongs to the bin below.
// Bins must be strictly increasing or strictly decreasing. Edges are printed
// in their shortest exact decimal form, so an edge parsed from "8.0" prints as 8.
func Digitize(varname string, bins []decimal.Decimal, mapIndices []string, right bool) (string, error) {
	increasing, err := monotonicity(bins)
	if err != nil {
		return "", errors.Wrapf(err, "digitize %s", varname)
	}

	if mapIndices == nil {
		mapIndices = defaultIndices(len(bins), increasing)
	}
	if len(mapIndices) != len(bins)+1 {
		return "", errors.Reasonf(errors.IndexCount, "digitize %s: %d bins need %d map indices, got %d",
			varname, len(bins), len(bins)+1, len(mapIndices))
	}

	op := ">="
	if right {
		op = ">"
	}

	// the chain is always built against descending edges
	if increasing {
		bins = reversedDecimals(bins)
		mapIndices = reversedStrings(mapIndices)
	}
	return compareChain(varname, op, bins, mapIndices), nil
}

// compareChain emits ((v op b0))? m0:(((v op b1))? m1:(...)), innermost last.
func compareChain(varname, op string, bins []decimal.Decimal, mapIndices []string) string {
	falseValue := mapIndices[len(mapIndices)-1]
	for i := len(bins) - 1; i >= 0; i-- {
		if i < len(bins)-1 {
			falseValue = "(" + falseValue + ")"
		}
		falseValue = fmt.Sprintf("((%s%s%s))? %s:%s", varname, op, bins[i].String(), mapIndices[i], falseValue)
	}
	return falseValue
}

// monotonicity reports whether bins increase, or returns an error if they
// neither strictly increase nor strictly decrease. A single edge counts as increasing.
func monotonicity(bins []decimal.Decimal) (bool, error) {
	if len(bins) == 0 {
		return false, errors.Reasonf(errors.EmptyInput, "no bins")
	}
	if len(bins) == 1 {
		return true, nil
	}

	sign := bins[1].Sub(bins[0]).Sign()
	for i := 1; i < len(bins); i++ {
		if s := bins[i].Sub(bins[i-1]).Sign(); s == 0 || s != sign {
			return false, errors.Reasonf(errors.NonMonotonic,
				"bins must be monotonically increasing or decreasing, %s follows %s", bins[i], bins[i-1])
		}
	}
	return sign > 0, nil
}

func defaultIndices(n int, increasing bool) []string {
	indices := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		idx := i
		if !increasing {
			idx = n - i
		}
		indices = append(indices, strconv.Itoa(idx))
	}
	return indices
}

func reversedDecimals(ds []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ds))
	for i, d := range ds {
		out[len(ds)-1-i] = d
	}
	return out
}

func reversedStrings(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}
	return out
}

// ParseBins parses textual bin edges, keeping their exact decimal values.
func ParseBins(edges []string) ([]decimal.Decimal, error) {
	bins := make([]decimal.Decimal, 0, len(edges))
	for _, e := range edges {
		d, err := decimal.NewFromString(e)
		if err != nil {
			return nil, errors.Wrapf(err, "bin edge %q", e)
		}
		bins = append(bins, d)
	}
	return bins, nil
}
