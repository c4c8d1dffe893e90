package dicemosaic

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the pipeline wraps exactly one of
// them, so callers can branch with errors.Is.
var (
	ErrConfig = errors.New("configuration error")
	ErrInput  = errors.New("input error")
	ErrAsset  = errors.New("asset error")
)

// ErrImageTooSmall reports a source image that cannot hold a single die.
var ErrImageTooSmall = fmt.Errorf("%w: image too small", ErrInput)

// Stage names used in StageError.
const (
	StageConfig    = "config"
	StageDecode    = "decode"
	StageScale     = "scale"
	StageThreshold = "threshold"
	StageAggregate = "aggregate"
	StageMosaic    = "mosaic"
	StageSheet     = "sheet"
)

// StageError identifies the pipeline stage and the resource that made a run
// abort.
type StageError struct {
	Stage    string
	Resource string
	Err      error
}

func (e *StageError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Stage, e.Resource, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage, resource string, err error) error {
	return &StageError{Stage: stage, Resource: resource, Err: err}
}
