package pipeline

import "github.com/ironsheep/sprite-tools/internal/debuglog"

var debugf = debuglog.Printf
