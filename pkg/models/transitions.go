package models

// depositTransitions is the exhaustive table of legal deposit status moves.
// Every writer (scheduler, engine, webhook reconciler) checks it before
// persisting; an illegal move is rejected, never silently applied.
var depositTransitions = map[DepositStatus][]DepositStatus{
	DepositScheduled:  {DepositProcessing, DepositFailed},
	DepositProcessing: {DepositAuthorized, DepositCaptured, DepositFailed},
	DepositAuthorized: {DepositCaptured, DepositPartiallyCaptured, DepositReleased, DepositFailed},
	// FAILED is terminal for the attempt but may be re-queued for another try.
	DepositFailed: {DepositScheduled},
	// CAPTURED, PARTIALLY_CAPTURED and RELEASED are terminal.
	DepositCaptured:          {},
	DepositPartiallyCaptured: {},
	DepositReleased:          {},
}

// CanTransition reports whether a deposit may move from one status to another.
func CanTransition(from, to DepositStatus) bool {
	for _, next := range depositTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a deposit status accepts no further transitions.
func IsTerminal(s DepositStatus) bool {
	return len(depositTransitions[s]) == 0
}
