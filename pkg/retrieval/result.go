package retrieval

import (
	"fmt"
	"strings"
)

// Status tags a retrieval outcome. The old string-sentinel signaling
// ("Error retrieving...", "No relevant...") is replaced by this structural
// match; the decision table is unchanged: only Ok carries knowledge.
type Status int

const (
	StatusOk Status = iota
	StatusEmpty
	StatusErr
)

// Result is the normalized outcome of one knowledge-base lookup.
type Result struct {
	status Status
	block  string
	err    error
}

func Ok(block string) Result {
	return Result{status: StatusOk, block: block}
}

func Empty() Result {
	return Result{status: StatusEmpty}
}

func Err(err error) Result {
	return Result{status: StatusErr, err: err}
}

func (r Result) Status() Status {
	return r.status
}

// Block returns the formatted knowledge block. ok is true only for genuine
// retrieved content; callers must never surface anything when ok is false.
func (r Result) Block() (string, bool) {
	return r.block, r.status == StatusOk
}

func (r Result) Err() error {
	return r.err
}

// FormatPassages renders passages as a numbered block: "{i}. {passage}\n\n".
// Blank and whitespace-only passages are skipped; if nothing survives the
// filter the result is Empty.
func FormatPassages(passages []string) Result {
	var sb strings.Builder
	n := 0
	for _, p := range passages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		n++
		sb.WriteString(fmt.Sprintf("%d. %s\n\n", n, p))
	}
	if n == 0 {
		return Empty()
	}
	return Ok(sb.String())
}
