package prompt

// Stage identifies how far the narrowing got before the body fit under
// the ceiling.
type Stage int

const (
	// StageFull carries the complete body.
	StageFull Stage = iota
	// StageFiltered carries the body restricted to primary source files.
	StageFiltered
	// StageNone carries no body at all; the caller must supply a manual
	// summary instead.
	StageNone
)

func (s Stage) String() string {
	switch s {
	case StageFull:
		return "full"
	case StageFiltered:
		return "filtered"
	case StageNone:
		return "none"
	}
	return "unknown"
}

// Payload is the outcome of narrowing: a stage tag plus the surviving
// body text. StageNone always carries an empty body.
type Payload struct {
	Stage Stage
	Body  string
}

// Narrow shrinks full until it fits under ceiling bytes. Transitions are
// one-way and the body never grows: full -> filtered -> none. filtered
// is invoked lazily and only when the full body is oversized; it may be
// nil when no filtered form exists (the report body, for example), which
// jumps straight to StageNone.
func Narrow(full string, filtered func() (string, error), ceiling int) Payload {
	if len(full) <= ceiling {
		return Payload{Stage: StageFull, Body: full}
	}

	if filtered != nil {
		body, err := filtered()
		if err == nil && body != "" && len(body) <= ceiling && len(body) <= len(full) {
			return Payload{Stage: StageFiltered, Body: body}
		}
	}

	return Payload{Stage: StageNone}
}
