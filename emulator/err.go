package emulator

import (
	"errors"

	"github.com/ezrec/kror/translate"
)

var f = translate.From

var (
	ErrRunaway = errors.New(f("program failed to retire"))
)
