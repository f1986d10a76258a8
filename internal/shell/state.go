// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import "fmt"

// State is a step of the execution loop.
type State int

// Loop states.
const (
	StatePrompt State = iota
	StateRead
	StateParse
	StateDispatch
	StateChild
	StateWait
	StateExit
)

func (s State) String() string {
	switch s {
	case StatePrompt:
		return "PROMPT"
	case StateRead:
		return "READ"
	case StateParse:
		return "PARSE"
	case StateDispatch:
		return "DISPATCH"
	case StateChild:
		return "CHILD"
	case StateWait:
		return "WAIT"
	case StateExit:
		return "EXIT"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
