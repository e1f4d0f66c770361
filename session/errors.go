package session

import "errors"

// Sentinel errors for session. Callers should branch with errors.Is.
var (
	// ErrUnknownTemplate indicates an instruction referenced a template
	// name the session has not seen an init instruction for.
	ErrUnknownTemplate = errors.New("session: unknown template")

	// ErrDuplicateTemplate indicates an init instruction reused a name
	// already registered in this session.
	ErrDuplicateTemplate = errors.New("session: template already exists")

	// ErrUnknownKind indicates an Instruction carried a Kind this
	// dispatcher does not recognise.
	ErrUnknownKind = errors.New("session: unknown instruction kind")

	// ErrAlreadyFinalized indicates FinalizeAll was already called on
	// this session.
	ErrAlreadyFinalized = errors.New("session: session already finalized")
)
