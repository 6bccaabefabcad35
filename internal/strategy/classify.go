package strategy

// Classify assigns the solving strategy for a pair of operands.
// Deterministic, no I/O. Operands must already satisfy CheckOperands;
// classification of out-of-domain pairs is unspecified.
//
// Addition: a sum below 10 is basic. A pair whose ones digits carry
// (operand1 not on a ten, ones digits summing to 10 or more) is
// crossing. A single-digit operand1 that reaches past 10 without a
// ones-digit carry is make-ten (e.g. 2 + 13). Everything else, such as
// 23 + 45, needs no regrouping and stays basic.
//
// Subtraction: crossing whenever borrowing is required, either because
// operand1's ones digit is smaller than operand2's, or because the
// result lands in a lower decade than operand1 (e.g. 37 - 15 = 22
// crosses 30). Otherwise basic.
func Classify(op Operation, operand1, operand2 int) Strategy {
	if op == OpSubtraction {
		return classifySubtraction(operand1, operand2)
	}
	return classifyAddition(operand1, operand2)
}

func classifyAddition(operand1, operand2 int) Strategy {
	if operand1+operand2 < 10 {
		return StrategyBasic
	}
	if operand1%10 != 0 && operand1%10+operand2%10 >= 10 {
		return StrategyCrossing
	}
	if diff := 10 - operand1; diff >= 1 && diff <= 9 {
		return StrategyMakeTen
	}
	return StrategyBasic
}

func classifySubtraction(operand1, operand2 int) Strategy {
	if operand1%10 < operand2%10 {
		return StrategyCrossing
	}
	if (operand1-operand2)/10 < operand1/10 {
		return StrategyCrossing
	}
	return StrategyBasic
}
