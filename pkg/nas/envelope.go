package nas

import "fmt"

// Extended protocol discriminator values, TS 24.007 clause 11.2.3.1.1A.
const (
	EpdSessionManagement  = 0x2e // 5GSM
	EpdMobilityManagement = 0x7e // 5GMM
)

// SecurityHeader classifies the protection applied to a 5GMM message,
// TS 24.501 clause 9.3.
type SecurityHeader uint8

const (
	SecurityPlain                       SecurityHeader = 0
	SecurityIntegrity                   SecurityHeader = 1
	SecurityIntegrityCiphered           SecurityHeader = 2
	SecurityIntegrityNewContext         SecurityHeader = 3
	SecurityIntegrityCipheredNewContext SecurityHeader = 4
)

func (s SecurityHeader) String() string {
	switch s {
	case SecurityPlain:
		return "Plain NAS message, not security protected"
	case SecurityIntegrity:
		return "Integrity protected"
	case SecurityIntegrityCiphered:
		return "Integrity protected and ciphered"
	case SecurityIntegrityNewContext:
		return "Integrity protected with new 5G NAS security context"
	case SecurityIntegrityCipheredNewContext:
		return "Integrity protected and ciphered with new 5G NAS security context"
	default:
		return fmt.Sprintf("Reserved (%d)", uint8(s))
	}
}

func (s SecurityHeader) ciphered() bool {
	return s == SecurityIntegrityCiphered || s == SecurityIntegrityCipheredNewContext
}

// UserDataKind selects how opaque user-data payload containers are
// labeled for downstream inspection.
type UserDataKind uint8

const (
	UserDataNone UserDataKind = iota
	UserDataIPv4
	UserDataIPv6
	UserDataEthernet
)

// DefaultMaxDepth bounds nested payload-container recursion. The
// multiple-payloads construct lets a message nest itself without bound,
// so the ceiling is deliberately small.
const DefaultMaxDepth = 8

// Policy carries the caller's decode preferences. The zero value is a
// safe default: ciphered content stays opaque and recursion is bounded
// by DefaultMaxDepth.
type Policy struct {
	// DecipherAsPlain treats ciphered content as plaintext, for traffic
	// captured with the null ciphering algorithm.
	DecipherAsPlain bool
	// UserData labels opaque user-data containers (CIoT small data).
	UserData UserDataKind
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (p Policy) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

// decodeContext is the only mutable state of a decode call. It is
// created per top-level message and owned by that call, including every
// recursive descent: the depth counter is shared across all of them,
// the container-type scratch is scoped per message.
type decodeContext struct {
	policy Policy
	depth  int

	// payload container type, threaded from the IE that declares it to
	// the IE that consumes it within the same message
	containerType    byte
	containerTypeSet bool
}

// enter counts one level of message or container nesting. The caller
// must pair it with leave when it returns true.
func (dc *decodeContext) enter() bool {
	if dc.depth >= dc.policy.maxDepth() {
		return false
	}
	dc.depth++
	return true
}

func (dc *decodeContext) leave() {
	dc.depth--
}

// Decode parses one top-level NAS-5GS message and returns the decoded
// tree. Decode problems are attached to the tree as diagnostics; the
// returned error covers only contract violations on the input itself.
func Decode(data []byte, policy Policy) (*Element, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) < 2 {
		return nil, ErrShortInput
	}
	if policy.MaxDepth < 0 {
		return nil, ErrBadPolicy
	}
	dc := &decodeContext{policy: policy}
	return decodeMessage(dc, data), nil
}

// decodeMessage is the envelope / security state machine. Embedded
// payload-container content re-enters here with the security state
// implicitly Plain: embedded content is already deciphered by
// definition.
func decodeMessage(dc *decodeContext, data []byte) *Element {
	root := NewElement("NAS-5GS message", 0, len(data))
	if !dc.enter() {
		root.Fail(FailureRecursionLimitExceeded, SeverityError,
			"nesting deeper than %d levels", dc.policy.maxDepth())
		return root
	}
	defer dc.leave()

	// container-type scratch is scoped to this message
	savedType, savedSet := dc.containerType, dc.containerTypeSet
	dc.containerType, dc.containerTypeSet = 0, false
	defer func() {
		dc.containerType, dc.containerTypeSet = savedType, savedSet
	}()

	cur := NewCursor(data)
	epd, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMalformedLength, SeverityError, "missing extended protocol discriminator octet")
		return root
	}
	root.AddValue("Extended protocol discriminator", 0, 1, epd)

	switch epd {
	case EpdMobilityManagement:
		decodeMMEnvelope(dc, cur, root)
	case EpdSessionManagement:
		decodeSMEnvelope(dc, cur, root)
	default:
		decodeLegacyEnvelope(cur, root, epd)
	}
	return root
}

func decodeMMEnvelope(dc *decodeContext, cur *Cursor, root *Element) {
	b, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing security header octet")
		return
	}
	sht := SecurityHeader(b & 0x0f)
	root.AddValue("Security header type", cur.Offset()-1, 1, sht.String())

	if sht != SecurityPlain {
		mac, ok := cur.ReadBytes(4)
		if !ok {
			root.Fail(FailureMissingMandatoryElement, SeverityError, "truncated security header")
			return
		}
		root.AddRaw("Message authentication code", cur.Offset()-4, mac)
		sn, ok := cur.ReadByte()
		if !ok {
			root.Fail(FailureMissingMandatoryElement, SeverityError, "truncated security header")
			return
		}
		root.AddValue("Sequence number", cur.Offset()-1, 1, sn)

		if sht.ciphered() && !dc.policy.DecipherAsPlain {
			start := cur.Offset()
			root.AddRaw("Encrypted data", start, cur.Rest()).
				Fail(FailureEncryptedData, SeverityNote, "ciphered content, no decipher requested")
			return
		}
		// the protected body is a complete plain NAS message
		start := cur.Offset()
		inner := decodeMessage(dc, cur.Rest())
		offsetChildren(inner, start)
		inner.Offset = start
		root.Add(inner)
		return
	}

	msgType, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing message type octet")
		return
	}
	dispatchMessage(dc, ProtocolMM, cur, root, msgType)
}

func decodeSMEnvelope(dc *decodeContext, cur *Cursor, root *Element) {
	psi, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing PDU session identity octet")
		return
	}
	root.AddValue("PDU session identity", cur.Offset()-1, 1, psi)
	pti, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing procedure transaction identity octet")
		return
	}
	root.AddValue("Procedure transaction identity", cur.Offset()-1, 1, pti)
	msgType, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing message type octet")
		return
	}
	dispatchMessage(dc, ProtocolSM, cur, root, msgType)
}

// legacyProtocolNames maps pre-5GS protocol discriminators (low nibble
// of the first octet, TS 24.007 clause 11.2.3.1.1) for pass-through.
var legacyProtocolNames = map[byte]string{
	0x2: "EPS session management",
	0x3: "Call control",
	0x5: "Mobility management",
	0x6: "Radio resources management",
	0x7: "EPS mobility management",
	0x8: "GPRS mobility management",
	0x9: "SMS",
	0xa: "GPRS session management",
	0xb: "Non call related SS",
}

func decodeLegacyEnvelope(cur *Cursor, root *Element, epd byte) {
	name := "Unknown protocol"
	if n, ok := legacyProtocolNames[epd&0x0f]; ok {
		name = n + " (legacy)"
	}
	e := root.AddRaw(name, cur.Offset(), cur.Rest())
	e.Fail(FailureNotYetDissected, SeverityNote, "protocol discriminator 0x%02x handled by a legacy dissector", epd)
}

// dispatchMessage is the pure message-type lookup plus the executor run.
func dispatchMessage(dc *decodeContext, proto Protocol, cur *Cursor, root *Element, msgType byte) {
	desc, ok := lookupMessage(proto, msgType)
	if !ok {
		root.AddValue("Message type", cur.Offset()-1, 1, fmt.Sprintf("0x%02x", msgType)).
			Fail(FailureUnknownMessageType, SeverityError, "no %s message with type 0x%02x", proto, msgType)
		return
	}
	root.AddValue("Message type", cur.Offset()-1, 1, desc.name)
	msg := root.Add(NewElement(desc.name, cur.Offset(), cur.Remaining()))
	if desc.reserved {
		msg.Fail(FailureNotYetDissected, SeverityNote, "not used in this version of the protocol")
		if cur.Remaining() > 0 {
			msg.Raw = cur.Rest()
		}
		return
	}
	runMessageIEs(dc, proto, cur, desc, msg)
}

// decodeUpdpMessage is the UE-policy-delivery top-level decoder: a PTI
// octet, a message type octet, then the message table walk.
func decodeUpdpMessage(dc *decodeContext, data []byte) *Element {
	root := NewElement("UE policy delivery message", 0, len(data))
	if !dc.enter() {
		root.Fail(FailureRecursionLimitExceeded, SeverityError,
			"nesting deeper than %d levels", dc.policy.maxDepth())
		return root
	}
	defer dc.leave()

	cur := NewCursor(data)
	pti, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing procedure transaction identity octet")
		return root
	}
	root.AddValue("Procedure transaction identity", 0, 1, pti)
	msgType, ok := cur.ReadByte()
	if !ok {
		root.Fail(FailureMissingMandatoryElement, SeverityError, "missing message type octet")
		return root
	}
	dispatchMessage(dc, ProtocolUPDP, cur, root, msgType)
	return root
}

// offsetChildren rebases a subtree's offsets into the enclosing buffer.
func offsetChildren(e *Element, base int) {
	for _, c := range e.Children {
		c.Offset += base
		offsetChildren(c, base)
	}
}
