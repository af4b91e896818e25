package nes

import "github.com/nevisdale/m6502/internal/translate"

var f = translate.From
