package block

import "github.com/zeebo/errs"

// Error is the class of errors raised by this package.
var Error = errs.Class("block")
