package session

// Kind tags which instruction variant an Instruction carries. The
// dispatcher switches on Kind directly; it never inspects Instruction's
// fields through reflection.
type Kind int

const (
	KindInitSingle Kind = iota
	KindInitMulti
	KindSimpleTransition
	KindSynchSendTransition
	KindSynchRecvCondTransition
	KindTimeCondTransition
	KindSynchTimeCondTransition
	KindInvariant
	KindQueryGeneral
	KindQueryDeadlock
	KindQueryLeadsTo
	KindQueryBoundedResponse
	KindQueryReachability
)

// PathOp is one of the four CTL path operators the instruction stream
// carries (AG, AF, EG, EF).
type PathOp int

const (
	AG PathOp = iota
	AF
	EG
	EF
)

// encode renders a PathOp in bracket notation: "A[]", "A<>", "E[]",
// "E<>".
func (p PathOp) encode() string {
	switch p {
	case AG:
		return "A[]"
	case AF:
		return "A<>"
	case EG:
		return "E[]"
	case EF:
		return "E<>"
	default:
		return "?"
	}
}

// TimeCond is one time-condition clause attached to a transition
// instruction: "entering|leaving Location relop Number".
// RelOp and Number are carried as the caller supplied them and used
// verbatim as a guard constraint; unlike invariant conditions, guard
// conditions are not required to be upper-bound shaped.
type TimeCond struct {
	Entering bool // true: "entering Location"; false: "leaving Location"
	Location string
	RelOp    string
	Number   string
}

// Constraint renders the time condition as a guard constraint string,
// e.g. " > 5".
func (c TimeCond) Constraint() string {
	return " " + c.RelOp + " " + c.Number
}

// Instruction is the discriminated-union member of the dispatcher's
// input stream. Only the fields relevant to Kind are
// populated; the rest are left zero.
type Instruction struct {
	Kind Kind

	Template string

	// InitSingle / QueryBoundedResponse / QueryReachability
	Location string

	// InitMulti / Invariant
	Locations []string

	// InitMulti
	Initial string

	// transition variants
	From, To []string
	Channel  string // SynchSendTransition / SynchRecvCondTransition / SynchTimeCondTransition

	// TimeCondTransition / SynchTimeCondTransition
	TimeConds []TimeCond

	// Optional send half of the transition itself. Combined with a
	// receive Channel (SynchRecvCondTransition, SynchTimeCondTransition)
	// it triggers the committed-intermediate expansion.
	SendChannel string

	// Invariant: already upper-bound-flipped constraint strings
	InvConds []string

	// QueryGeneral / QueryDeadlock
	PathOp       PathOp
	StateFormula string // QueryGeneral only

	// QueryLeadsTo
	LHS, RHS string

	// QueryBoundedResponse
	Bound int
}
