package geodesic

import "errors"

// ErrInvalidParameter is returned, wrapped, by the constructors when an
// ellipsoid parameter is out of range. Test for it with errors.Is.
var ErrInvalidParameter = errors.New("geodesic: invalid parameter")
