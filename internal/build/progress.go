package build

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Stage identifies one step of a build invocation.
type Stage string

const (
	StageClean Stage = "clean"
	StageWalk  Stage = "walk"
	StageIndex Stage = "index"
	StageCode  Stage = "code"
	StageDocs  Stage = "docs"
)

// stageSeq fixes the display ordinal of each stage. StageClean only runs
// under --force, so a plain build's status line starts at [2/5].
var stageSeq = []Stage{StageClean, StageWalk, StageIndex, StageCode, StageDocs}

// ProgressFunc receives each build stage as it begins.
type ProgressFunc func(stage Stage, detail string)

// StageReporter renders build progress as a single rewritten status line:
// one update per stage, no animation, no background ticker -- a build is
// synchronous and its stages are few, so the line only needs to change
// when the work does. Output is suppressed entirely when w is not a TTY,
// keeping piped and CI runs quiet.
type StageReporter struct {
	w      *os.File
	isTTY  bool
	active bool
}

// NewStageReporter creates a StageReporter writing to w (typically
// os.Stderr).
func NewStageReporter(w *os.File) *StageReporter {
	return &StageReporter{
		w:     w,
		isTTY: isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()),
	}
}

// Progress rewrites the status line for the stage that just began.
func (r *StageReporter) Progress(stage Stage, detail string) {
	if !r.isTTY {
		return
	}
	r.active = true
	fmt.Fprintf(r.w, "\r\033[K[%d/%d] %s", stageOrdinal(stage), len(stageSeq), detail)
}

// Done replaces the status line with message, or just clears it when
// message is empty (so an error can print on a clean line).
func (r *StageReporter) Done(message string) {
	if !r.isTTY || !r.active {
		return
	}
	r.active = false
	if message != "" {
		fmt.Fprintf(r.w, "\r\033[K%s\n", message)
	} else {
		fmt.Fprint(r.w, "\r\033[K")
	}
}

func stageOrdinal(stage Stage) int {
	for i, s := range stageSeq {
		if s == stage {
			return i + 1
		}
	}
	return len(stageSeq)
}
