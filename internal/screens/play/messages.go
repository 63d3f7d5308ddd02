package play

// speechDoneMsg is sent when a pronunciation attempt finishes. Gen ties
// the result to the word that requested it; stale results are dropped.
type speechDoneMsg struct {
	Gen int
	Err error
}

// celebrateDoneMsg ends the between-words celebration burst.
type celebrateDoneMsg struct {
	Gen int
}

// flashClearMsg clears the mistake flash on the tile rack.
type flashClearMsg struct{}
