package cart

import (
	"errors"

	"github.com/nevisdale/m6502/internal/translate"
)

var f = translate.From

var (
	ErrBadMagic          = errors.New(f("not an iNES image"))
	ErrTruncated         = errors.New(f("truncated image"))
	ErrNoPRG             = errors.New(f("image has no PRG ROM"))
	ErrUnsupportedMapper = errors.New(f("unsupported mapper"))
)
