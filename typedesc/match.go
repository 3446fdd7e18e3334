package typedesc

// Match reports whether value conforms to d. It has no side effects.
// A nil descriptor means "not declared" and admits everything.
//
// Variants are tried in a fixed order: placeholders first, then tuples,
// disjunctions and containers, falling back to the concrete instance-of
// check.
func Match(value any, d Descriptor) bool {
	switch desc := d.(type) {
	case nil:
		return true
	case *Placeholder:
		if !desc.Constrained() {
			return true
		}

		return matchAny(value, desc.constraints)
	case *Sequence:
		return desc.match(value)
	case *Disjunction:
		if len(desc.alternatives) == 0 {
			return true
		}

		return matchAny(value, desc.alternatives)
	case *Container:
		return desc.match(value)
	case *Reference:
		return false
	case *Concrete:
		return desc.match(value)
	default:
		return false
	}
}

func matchAny(value any, alternatives []Descriptor) bool {
	for _, alt := range alternatives {
		if Match(value, alt) {
			return true
		}
	}

	return false
}
