package decisiontree

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/kiteco/cdoexpr/errors"
)

// An Ensemble is the ordered list of per-tree dumps of a model
type Ensemble struct {
	Trees []string `json:"trees"`
}

var boosterRe = regexp.MustCompile(`^booster\[\d+\]:\s*$`)

// Load reads an ensemble from r. Three layouts are accepted: a JSON array of
// dump strings, a JSON object {"trees": [...]}, or a text dump where each tree
// starts with a "booster[<i>]:" line.
func Load(r io.Reader) (*Ensemble, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading ensemble")
	}

	trimmed := bytes.TrimSpace(buf)
	if len(trimmed) == 0 {
		return nil, errors.Reasonf(errors.EmptyInput, "ensemble dump is empty")
	}

	switch trimmed[0] {
	case '[':
		var trees []string
		if err := json.Unmarshal(trimmed, &trees); err != nil {
			return nil, errors.Wrapf(err, "decoding tree list")
		}
		return &Ensemble{Trees: trees}, nil
	case '{':
		var ensemble Ensemble
		if err := json.Unmarshal(trimmed, &ensemble); err != nil {
			return nil, errors.Wrapf(err, "decoding ensemble")
		}
		return &ensemble, nil
	default:
		return LoadText(bytes.NewReader(buf))
	}
}

// LoadText splits a text dump on its "booster[<i>]:" headers. A dump without
// headers is a single tree; otherwise anything before the first header is dropped.
func LoadText(r io.Reader) (*Ensemble, error) {
	var ensemble Ensemble
	var current []string
	var started bool

	flush := func() {
		if started || len(current) > 0 {
			ensemble.Trees = append(ensemble.Trees, strings.Join(current, "\n"))
		}
		current = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if boosterRe.MatchString(line) {
			if started {
				flush()
			}
			// lines ahead of the first header are not part of any tree
			current = nil
			started = true
			continue
		}
		if strings.TrimSpace(line) == "" && len(current) == 0 {
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scanning text dump")
	}
	flush()

	if len(ensemble.Trees) == 0 {
		return nil, errors.Reasonf(errors.EmptyInput, "text dump has no trees")
	}
	return &ensemble, nil
}
