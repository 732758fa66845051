package sheet

import "github.com/ironsheep/sprite-tools/internal/debuglog"

var debugf = debuglog.Printf
