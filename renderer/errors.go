package renderer

import "errors"

var (
	ErrNoWindow         = errors.New("renderer: no window defined")
	ErrNoDevice         = errors.New("renderer: no device defined")
	ErrNoPipeline       = errors.New("renderer: no shader pipeline defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrClosed           = errors.New("renderer: renderer is closed")
)
