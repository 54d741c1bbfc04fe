package chain

import "github.com/zeebo/errs"

// Error is the class of errors raised by this package.
var Error = errs.Class("chain")
