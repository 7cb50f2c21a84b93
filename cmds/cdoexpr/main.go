package main

import (
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/kiteco/cdoexpr/cmdline"
	"github.com/kiteco/cdoexpr/errors"
	"github.com/kiteco/cdoexpr/logging"
)

// replaced in tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Output holds the flags shared by every command.
type Output struct {
	Out     string `help:"write the expression to this file instead of stdout"`
	Verbose bool   `arg:"env:CDOEXPR_VERBOSE" help:"log intermediate results and timings to stderr"`
}

func (o Output) setup() {
	logging.SetLogger(logging.New(stderr, o.Verbose))
}

func (o Output) write(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if o.Out == "" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := ioutil.WriteFile(o.Out, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", o.Out)
	}
	return nil
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		buf, err := ioutil.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrapf(err, "reading stdin")
		}
		return string(buf), nil
	}
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(buf), nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func commands() []cmdline.Command {
	return []cmdline.Command{
		digitizeCmd(),
		conditionsCmd(),
		voteCmd(),
		ensembleCmd(),
		batchCmd(),
	}
}

func main() {
	cmdline.MustDispatch(commands()...)
}
