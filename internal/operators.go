package internal

// operatorApply evaluates a binary operator over two numbers
type operatorApply func(x, y float64) value

// numericOperators holds every binary operator that only accepts numbers.
// '+' is missing because it also concatenates strings.
var numericOperators = map[TokenType]operatorApply{
	tkMinus: func(x, y float64) value {
		return loxNumber(x - y)
	},
	tkStar: func(x, y float64) value {
		return loxNumber(x * y)
	},
	tkSlash: func(x, y float64) value {
		return loxNumber(x / y)
	},
	tkGreater: func(x, y float64) value {
		return loxBool(x > y)
	},
	tkGreaterEqual: func(x, y float64) value {
		return loxBool(x >= y)
	},
	tkLess: func(x, y float64) value {
		return loxBool(x < y)
	},
	tkLessEqual: func(x, y float64) value {
		return loxBool(x <= y)
	},
}

// add implements '+' for two numbers or two strings
func add(left, right value) (value, bool) {
	switch l := left.(type) {
	case loxNumber:
		if r, ok := right.(loxNumber); ok {
			return l + r, true
		}
	case loxString:
		if r, ok := right.(loxString); ok {
			return l + r, true
		}
	}
	return nil, false
}
