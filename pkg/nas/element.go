package nas

import "fmt"

// FailureKind classifies a decode diagnostic attached to the tree.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureUnknownMessageType
	FailureMissingMandatoryElement
	FailureUnknownInformationElement
	FailureMalformedLength
	FailureRecursionLimitExceeded
	FailureNotYetDissected
	FailureExtraneousData
	FailureEncryptedData
	FailureMalformedValue
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureUnknownMessageType:
		return "unknown message type"
	case FailureMissingMandatoryElement:
		return "missing mandatory element"
	case FailureUnknownInformationElement:
		return "unknown information element"
	case FailureMalformedLength:
		return "malformed length"
	case FailureRecursionLimitExceeded:
		return "recursion limit exceeded"
	case FailureNotYetDissected:
		return "not yet dissected"
	case FailureExtraneousData:
		return "extraneous data"
	case FailureEncryptedData:
		return "encrypted data"
	case FailureMalformedValue:
		return "malformed value"
	default:
		return fmt.Sprintf("failure(%d)", int(k))
	}
}

// Severity of a diagnostic, for consumers that render the tree.
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
)

// Diagnostic marks a decode problem at the element it is attached to.
// Failures never abort the whole message; they are rendered in place.
type Diagnostic struct {
	Kind     FailureKind `json:"kind"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}

// Element is one node of the decoded tree: a message, an information
// element, or a sub-entry of a list-structured IE. Offset and Length are
// relative to the buffer the enclosing message was decoded from.
type Element struct {
	Name     string        `json:"name"`
	Offset   int           `json:"offset"`
	Length   int           `json:"length"`
	Value    any           `json:"value,omitempty"`
	Raw      []byte        `json:"raw,omitempty"`
	Children []*Element    `json:"children,omitempty"`
	Diags    []*Diagnostic `json:"diagnostics,omitempty"`
}

// NewElement returns a named node spanning [offset, offset+length).
func NewElement(name string, offset, length int) *Element {
	return &Element{Name: name, Offset: offset, Length: length}
}

// Add appends a child node and returns it.
func (e *Element) Add(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// AddValue appends a named leaf holding a decoded value.
func (e *Element) AddValue(name string, offset, length int, value any) *Element {
	child := NewElement(name, offset, length)
	child.Value = value
	return e.Add(child)
}

// AddRaw appends a named leaf holding an opaque octet span.
func (e *Element) AddRaw(name string, offset int, raw []byte) *Element {
	child := NewElement(name, offset, len(raw))
	child.Raw = raw
	return e.Add(child)
}

// Fail attaches a diagnostic to the element.
func (e *Element) Fail(kind FailureKind, sev Severity, format string, args ...any) *Element {
	e.Diags = append(e.Diags, &Diagnostic{
		Kind:     kind,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
	return e
}

// Failed reports whether the element or any descendant carries a
// diagnostic of at least the given severity.
func (e *Element) Failed(min Severity) bool {
	for _, d := range e.Diags {
		if d.Severity >= min {
			return true
		}
	}
	for _, c := range e.Children {
		if c.Failed(min) {
			return true
		}
	}
	return false
}

// Find returns the first descendant (depth first) with the given name,
// or nil. Intended for tests and simple consumers.
func (e *Element) Find(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
		if m := c.Find(name); m != nil {
			return m
		}
	}
	return nil
}
