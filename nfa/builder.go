package nfa

import "github.com/kanucool/Regex-Engine/token"

// exitSlot identifies one dangling out-edge of a fragment: the state
// holding it and which of its two successor fields (Out or Out2) is still
// unpatched. Using (StateID, slot) pairs instead of raw pointers lets the
// arena (a plain growable slice) reallocate freely during construction,
// per §9's "non-owning indices" requirement.
type exitSlot struct {
	state StateID
	slot  int // 0 = Out, 1 = Out2
}

// fragment is a partially-built piece of NFA: an entry state and the list
// of dangling exits still to be wired to whatever comes next. Mirrors the
// frag/ptr model of Thompson construction.
type fragment struct {
	entry StateID
	exits []exitSlot
}

// Builder runs Thompson construction over a postfix token.Token stream,
// maintaining a stack of fragments per spec §4.2.
type Builder struct {
	arena []State
	stack []fragment
}

// NewBuilder returns an empty Builder ready to consume a postfix stream.
func NewBuilder() *Builder {
	return &Builder{
		arena: make([]State, 0, 64),
		stack: make([]fragment, 0, 16),
	}
}

func (b *Builder) alloc(s State) StateID {
	id := StateID(len(b.arena))
	b.arena = append(b.arena, s)
	return id
}

func (b *Builder) push(f fragment) {
	b.stack = append(b.stack, f)
}

func (b *Builder) pop() (fragment, bool) {
	if len(b.stack) == 0 {
		return fragment{}, false
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f, true
}

func (b *Builder) peek() (*fragment, bool) {
	if len(b.stack) == 0 {
		return nil, false
	}
	return &b.stack[len(b.stack)-1], true
}

// patch wires every exit slot in exits to target.
func (b *Builder) patch(exits []exitSlot, target StateID) {
	for _, e := range exits {
		s := &b.arena[e.state]
		if e.slot == 0 {
			s.Out = target
		} else {
			s.Out2 = target
		}
	}
}

// Build consumes a postfix token stream and returns the completed NFA, or
// a *BuildError if the stream is malformed (stack underflow).
func Build(postfix []token.Token) (*NFA, error) {
	b := NewBuilder()
	for _, tok := range postfix {
		if err := b.step(tok); err != nil {
			return nil, err
		}
	}

	final, ok := b.pop()
	if !ok {
		// An entirely empty postfix stream (empty pattern, no implicit
		// wrap) yields a null NFA: no states, nothing to match against.
		return &NFA{Start: InvalidState}, nil
	}
	if len(b.stack) != 0 {
		return nil, newBuildError(ErrUnderflow, "postfix stream left more than one fragment on the stack")
	}

	matchState := b.alloc(State{Kind: Match})
	b.patch(final.exits, matchState)

	return &NFA{States: b.arena, Start: final.entry}, nil
}

func (b *Builder) step(tok token.Token) error {
	switch tok.Kind {
	case token.Literal:
		id := b.alloc(State{Kind: Literal, Byte: tok.Literal})
		b.push(fragment{entry: id, exits: []exitSlot{{state: id, slot: 0}}})
	case token.Dot:
		id := b.alloc(State{Kind: Wildcard})
		b.push(fragment{entry: id, exits: []exitSlot{{state: id, slot: 0}}})
	case token.Class:
		id := b.alloc(State{Kind: Ranges, Intervals: tok.Intervals})
		b.push(fragment{entry: id, exits: []exitSlot{{state: id, slot: 0}}})
	case token.Concat:
		bFrag, ok := b.pop()
		if !ok {
			return newBuildError(ErrUnderflow, "CONCAT: missing right operand")
		}
		aFrag, ok := b.peek()
		if !ok {
			return newBuildError(ErrUnderflow, "CONCAT: missing left operand")
		}
		b.patch(aFrag.exits, bFrag.entry)
		aFrag.exits = bFrag.exits
	case token.Union:
		aFrag, ok := b.pop()
		if !ok {
			return newBuildError(ErrUnderflow, "UNION: missing right operand")
		}
		bFrag, ok := b.pop()
		if !ok {
			return newBuildError(ErrUnderflow, "UNION: missing left operand")
		}
		id := b.alloc(State{Kind: Split, Out: bFrag.entry, Out2: aFrag.entry})
		exits := append(append([]exitSlot{}, bFrag.exits...), aFrag.exits...)
		b.push(fragment{entry: id, exits: exits})
	case token.Star:
		f, ok := b.peek()
		if !ok {
			return newBuildError(ErrUnderflow, "STAR: missing operand")
		}
		id := b.alloc(State{Kind: Split, Out: f.entry})
		b.patch(f.exits, id)
		f.exits = []exitSlot{{state: id, slot: 1}}
		f.entry = id
	case token.Question:
		f, ok := b.peek()
		if !ok {
			return newBuildError(ErrUnderflow, "QUESTION: missing operand")
		}
		id := b.alloc(State{Kind: Split, Out: f.entry})
		f.exits = append(f.exits, exitSlot{state: id, slot: 1})
		f.entry = id
	case token.Plus:
		f, ok := b.peek()
		if !ok {
			return newBuildError(ErrUnderflow, "PLUS: missing operand")
		}
		id := b.alloc(State{Kind: Split, Out: f.entry})
		b.patch(f.exits, id)
		// Entry stays F.entry: PLUS requires at least one pass through F
		// before the split is reachable.
		f.exits = append(f.exits[:0], exitSlot{state: id, slot: 1})
	}
	return nil
}
