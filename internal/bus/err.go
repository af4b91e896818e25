package bus

import (
	"errors"

	"github.com/nevisdale/m6502/internal/translate"
)

var f = translate.From

var (
	ErrBadRegion = errors.New(f("bad region"))
	ErrNoDevice  = errors.New(f("no device"))
	ErrTooLarge  = errors.New(f("buffer larger than address space"))
)
