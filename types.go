package circulant

import "github.com/cwbudde/algo-circulant/internal/fftypes"

// Complex is a type constraint for the complex element types supported by
// the multiply routines. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for the real element types accepted by the
// real-valued wrappers. The canonical definition is in internal/fftypes.
type Float = fftypes.Float
