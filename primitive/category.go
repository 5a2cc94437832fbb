package primitive

import "intcast/wide"

type ConversionPair struct {
	From, To KindEnum
}

func (p ConversionPair) String() string {
	return p.From.TypeName() + " -> " + p.To.TypeName()
}

// IsWidening reports whether every value of from is representable in to,
// i.e. the conversion can never fail on the running platform.
func IsWidening(from, to KindEnum) bool {
	fromMin, fromMax := from.Bounds()
	toMin, toMax := to.Bounds()

	return wide.InRange(toMin, fromMin, toMax) && wide.InRange(toMin, fromMax, toMax)
}

// WideningPairs lists every pair for which IsWidening holds, ordered by source
// then target kind. Identity pairs are included.
func WideningPairs() []ConversionPair {
	var res []ConversionPair

	for fromKind := KindEnum(1); int(fromKind) < KindTotal; fromKind++ {
		for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
			if IsWidening(fromKind, toKind) {
				res = append(res, ConversionPair{fromKind, toKind})
			}
		}
	}

	return res
}
