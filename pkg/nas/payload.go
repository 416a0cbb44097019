package nas

import "fmt"

// Payload container type values, TS 24.501 clause 9.11.3.40.
const (
	PayloadContainerN1SM             = 0x01
	PayloadContainerSMS              = 0x02
	PayloadContainerLPP              = 0x03
	PayloadContainerSOR              = 0x04
	PayloadContainerUEPolicy         = 0x05
	PayloadContainerUEParamsUpdate   = 0x06
	PayloadContainerLocationServices = 0x07
	PayloadContainerCIoTUserData     = 0x08
	PayloadContainerServiceLevelAA   = 0x09
	PayloadContainerMultiple         = 0x0f
)

var payloadContainerTypeNames = map[byte]string{
	PayloadContainerN1SM:             "N1 SM information",
	PayloadContainerSMS:              "SMS",
	PayloadContainerLPP:              "LTE Positioning Protocol message container",
	PayloadContainerSOR:              "SOR transparent container",
	PayloadContainerUEPolicy:         "UE policy container",
	PayloadContainerUEParamsUpdate:   "UE parameters update transparent container",
	PayloadContainerLocationServices: "Location services message container",
	PayloadContainerCIoTUserData:     "CIoT user data container",
	PayloadContainerServiceLevelAA:   "Service-level-AA container",
	PayloadContainerMultiple:         "Multiple payloads",
}

// decodePayloadContainerType records the declared type in the decode
// context so the payload container of the same message can consume it.
func decodePayloadContainerType(dc *decodeContext, content []byte, off int, e *Element) {
	t := content[0] & 0x0f
	dc.containerType = t
	dc.containerTypeSet = true
	if name, ok := payloadContainerTypeNames[t]; ok {
		e.Value = name
	} else {
		e.Value = fmt.Sprintf("Unknown (%d)", t)
	}
}

// decodePayloadContainer interprets the container content according to
// the type declared by the preceding payload-container-type element.
// An unset or unknown type keeps the content opaque.
func decodePayloadContainer(dc *decodeContext, content []byte, off int, e *Element) {
	if !dc.containerTypeSet {
		e.Raw = content
		return
	}
	decodeContainerBody(dc, content, off, e, dc.containerType)
}

func decodeContainerBody(dc *decodeContext, content []byte, off int, e *Element, ctype byte) {
	switch ctype {
	case PayloadContainerN1SM:
		inner := decodeMessage(dc, content)
		offsetChildren(inner, off)
		inner.Offset = off
		e.Add(inner)

	case PayloadContainerUEPolicy:
		inner := decodeUpdpMessage(dc, content)
		offsetChildren(inner, off)
		inner.Offset = off
		e.Add(inner)

	case PayloadContainerMultiple:
		decodeMultiplePayloads(dc, content, off, e)

	case PayloadContainerCIoTUserData:
		name := "User data"
		switch dc.policy.UserData {
		case UserDataIPv4:
			name = "User data (IPv4)"
		case UserDataIPv6:
			name = "User data (IPv6)"
		case UserDataEthernet:
			name = "User data (Ethernet)"
		}
		e.AddRaw(name, off, content)

	case PayloadContainerSMS, PayloadContainerLPP, PayloadContainerSOR,
		PayloadContainerUEParamsUpdate, PayloadContainerLocationServices,
		PayloadContainerServiceLevelAA:
		e.AddRaw(payloadContainerTypeNames[ctype], off, content).
			Fail(FailureNotYetDissected, SeverityNote, "container handled by an external dissector")

	default:
		e.Raw = content
	}
}

// Optional IE types carried inside a payload container entry,
// TS 24.501 clause 9.11.3.39.
var payloadEntryOptIeNames = map[byte]string{
	0x12: "PDU session ID",
	0x22: "S-NSSAI",
	0x24: "Additional information",
	0x25: "DNN",
	0x37: "Back-off timer value",
	0x58: "5GMM cause",
	0x59: "Old PDU session ID",
	0x80: "Request type",
	0xa0: "MA PDU session information",
	0xf0: "Release assistance indication",
}

// decodeMultiplePayloads walks the multiple-payloads construct: an
// entry count, then per entry a 2-octet length, an optional-IE count
// packed with the entry's own container type, the optional sub-IEs and
// a nested container body. The nested body is a second recursion axis,
// so it is counted against the shared depth ceiling.
func decodeMultiplePayloads(dc *decodeContext, content []byte, off int, e *Element) {
	if !dc.enter() {
		e.Fail(FailureRecursionLimitExceeded, SeverityError,
			"nesting deeper than %d levels", dc.policy.maxDepth())
		return
	}
	defer dc.leave()

	cur := NewCursor(content)
	count, ok := cur.ReadByte()
	if !ok {
		e.Fail(FailureMalformedLength, SeverityError, "missing entry count")
		return
	}
	e.AddValue("Number of entries", off, 1, count)

	for i := 0; i < int(count); i++ {
		entryStart := off + cur.Offset()
		entryLen, ok := cur.ReadUint16()
		if !ok {
			e.Fail(FailureMalformedLength, SeverityError, "truncated entry %d header", i+1)
			return
		}
		body, ok := cur.ReadBytes(int(entryLen))
		if !ok {
			e.Add(NewElement(fmt.Sprintf("Payload container entry %d", i+1), entryStart, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"entry length %d exceeds remaining %d byte(s)", entryLen, cur.Remaining())
			return
		}
		entry := e.Add(NewElement(fmt.Sprintf("Payload container entry %d", i+1), entryStart, 2+len(body)))
		decodePayloadEntry(dc, body, entryStart+2, entry)
	}
	if cur.Remaining() > 0 {
		start := off + cur.Offset()
		rest := cur.Rest()
		e.AddRaw("Extraneous data", start, rest).
			Fail(FailureExtraneousData, SeverityNote, "%d byte(s) after last entry", len(rest))
	}
}

func decodePayloadEntry(dc *decodeContext, body []byte, off int, entry *Element) {
	cur := NewCursor(body)
	b, ok := cur.ReadByte()
	if !ok {
		entry.Fail(FailureMalformedLength, SeverityError, "empty entry")
		return
	}
	numOpts := int(b >> 4)
	innerType := b & 0x0f
	entry.AddValue("Number of optional IEs", off, 1, numOpts)
	if name, ok := payloadContainerTypeNames[innerType]; ok {
		entry.AddValue("Payload container type", off, 1, name)
	} else {
		entry.AddValue("Payload container type", off, 1, fmt.Sprintf("Unknown (%d)", innerType))
	}

	for i := 0; i < numOpts; i++ {
		ieStart := off + cur.Offset()
		ieType, ok := cur.ReadByte()
		if !ok {
			entry.Fail(FailureMalformedLength, SeverityError, "truncated optional IE %d", i+1)
			return
		}
		ieLen, ok := cur.ReadByte()
		if !ok {
			entry.Fail(FailureMalformedLength, SeverityError, "truncated optional IE %d", i+1)
			return
		}
		value, ok := cur.ReadBytes(int(ieLen))
		if !ok {
			entry.Add(NewElement("Optional IE", ieStart, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"optional IE length %d exceeds remaining %d byte(s)", ieLen, cur.Remaining())
			return
		}
		name, known := payloadEntryOptIeNames[ieType]
		if !known {
			name = fmt.Sprintf("Optional IE 0x%02x", ieType)
		}
		entry.AddRaw(name, ieStart, value)
	}

	start := off + cur.Offset()
	contents := cur.Rest()
	container := entry.Add(NewElement("Payload container contents", start, len(contents)))
	decodeContainerBody(dc, contents, start, container, innerType)
}
