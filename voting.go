package cdoexpr

import (
	"fmt"
	"strings"

	"github.com/kiteco/cdoexpr/errors"
)

// VoteCounter is the scratch variable holding the Boyer-Moore counter.
const VoteCounter = "_COUNT"

// MooreVoting emits statements running the Boyer-Moore majority vote over
// voters and leaving the winning value in output. The counter starts at zero;
// for each voter the candidate is replaced when the counter is zero, then the
// counter is reset to one, incremented on agreement or decremented otherwise.
//
// Each conditional assignment is written as an if/else block and translated
// with Statement.
func MooreVoting(voters []string, output string) (string, error) {
	if len(voters) == 0 {
		return "", errors.Reasonf(errors.EmptyInput, "no voters for %s", output)
	}

	var b strings.Builder
	b.WriteString(Assign(VoteCounter, "0"))
	b.WriteString(Assign(output, voters[0]))

	for _, v := range voters {
		candidate, err := Statement(candidateBlock(v, output))
		if err != nil {
			return "", errors.Wrapf(err, "candidate update for %s", v)
		}
		counter, err := Statement(counterBlock(v, output))
		if err != nil {
			return "", errors.Wrapf(err, "counter update for %s", v)
		}
		b.WriteString(candidate)
		b.WriteString(counter)
	}
	return b.String(), nil
}

func candidateBlock(voter, output string) string {
	return fmt.Sprintf(`if %[1]s == 0:
    %[3]s = %[2]s
else:
    %[3]s = %[3]s
`, VoteCounter, voter, output)
}

func counterBlock(voter, output string) string {
	return fmt.Sprintf(`if %[1]s == 0:
    %[1]s = 1
elif %[2]s == %[3]s:
    %[1]s = %[1]s + 1
else:
    %[1]s = %[1]s - 1
`, VoteCounter, voter, output)
}
