package nas

import "fmt"

// UE policy delivery catalog identifiers.
const (
	elemPolicySectionManagementList ElemID = 0x300 + iota
	elemPolicySectionManagementResult
	elemUpsiList
	elemPolicyClassmark
	elemOsId
)

var updpIEs = map[ElemID]ieDescriptor{
	elemPolicySectionManagementList:   {name: "UE policy section management list", decode: decodePolicySectionList},
	elemPolicySectionManagementResult: {name: "UE policy section management result", decode: decodePolicySectionResult},
	elemUpsiList:                      {name: "UPSI list", decode: decodeUpsiList},
	elemPolicyClassmark:               {name: "UE policy classmark", decode: decodeValueFirstOctet},
	elemOsId:                          {name: "OS Id", decode: decodeOsId},
}

// Policy part types, TS 24.501 clause D.6.2.
var policyPartTypeNames = map[byte]string{
	1: "URSP",
	2: "ANDSP",
	3: "V2XP",
	4: "ProSeP",
}

// decodePolicySectionList walks the three-level section management
// list: per-PLMN sublists, instructions keyed by UPSC, and typed policy
// section parts. URSP parts recurse into the rule decoder.
func decodePolicySectionList(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		subLen, ok := cur.ReadUint16()
		if !ok {
			e.Add(NewElement(fmt.Sprintf("Sublist %d", n), start, cur.Remaining())).
				Fail(FailureMalformedLength, SeverityError, "truncated sublist length")
			return
		}
		body, ok := cur.ReadBytes(int(subLen))
		if !ok {
			e.Add(NewElement(fmt.Sprintf("Sublist %d", n), start, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"sublist length %d exceeds remaining %d byte(s)", subLen, cur.Remaining())
			return
		}
		sub := e.Add(NewElement(fmt.Sprintf("Sublist %d", n), start, 2+len(body)))
		decodePolicySublist(body, start+2, sub)
	}
}

func decodePolicySublist(body []byte, off int, sub *Element) {
	cur := NewCursor(body)
	plmn, ok := cur.ReadBytes(3)
	if !ok {
		sub.Fail(FailureMalformedLength, SeverityError, "truncated PLMN")
		return
	}
	sub.AddValue("PLMN", off, 3, plmnString(plmn))

	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		insLen, ok := cur.ReadUint16()
		if !ok {
			sub.Fail(FailureMalformedLength, SeverityError, "truncated instruction %d length", n)
			return
		}
		insBody, ok := cur.ReadBytes(int(insLen))
		if !ok {
			sub.Add(NewElement(fmt.Sprintf("Instruction %d", n), start, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"instruction length %d exceeds remaining %d byte(s)", insLen, cur.Remaining())
			return
		}
		ins := sub.Add(NewElement(fmt.Sprintf("Instruction %d", n), start, 2+len(insBody)))
		decodePolicyInstruction(insBody, start+2, ins)
	}
}

func decodePolicyInstruction(body []byte, off int, ins *Element) {
	cur := NewCursor(body)
	upsc, ok := cur.ReadUint16()
	if !ok {
		ins.Fail(FailureMalformedLength, SeverityError, "truncated UPSC")
		return
	}
	ins.AddValue("UPSC", off, 2, fmt.Sprintf("0x%04x", upsc))

	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		partLen, ok := cur.ReadUint16()
		if !ok {
			ins.Fail(FailureMalformedLength, SeverityError, "truncated part %d length", n)
			return
		}
		partBody, ok := cur.ReadBytes(int(partLen))
		if !ok {
			ins.Add(NewElement(fmt.Sprintf("Policy section part %d", n), start, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"part length %d exceeds remaining %d byte(s)", partLen, cur.Remaining())
			return
		}
		part := ins.Add(NewElement(fmt.Sprintf("Policy section part %d", n), start, 2+len(partBody)))
		if len(partBody) == 0 {
			part.Fail(FailureMalformedLength, SeverityError, "empty policy section part")
			continue
		}
		partType := partBody[0]
		name, known := policyPartTypeNames[partType]
		if !known {
			name = fmt.Sprintf("Unknown (%d)", partType)
		}
		part.AddValue("Policy part type", start+2, 1, name)
		contents := partBody[1:]
		if partType == 1 {
			decodeUrspRules(contents, start+3, part)
		} else {
			part.AddRaw("Policy part contents", start+3, contents).
				Fail(FailureNotYetDissected, SeverityNote, "policy part type %q not dissected", name)
		}
	}
}

// URSP traffic descriptor component types with fixed widths where the
// encoding is fixed, TS 24.526 table 5.2.1. Negative size means a
// 1-octet length prefix precedes the value.
const lenPrefixed = -2

var urspTrafficComponents = map[byte]struct {
	name string
	size int
}{
	0x01: {"Match-all", 0},
	0x08: {"OS Id + OS App Id", lenPrefixed},
	0x10: {"IPv4 remote address", 8},
	0x21: {"IPv6 remote address/prefix length", 17},
	0x30: {"Protocol identifier/Next header", 1},
	0x50: {"Single remote port", 2},
	0x51: {"Remote port range", 4},
	0x81: {"Destination MAC address", 6},
	0x88: {"Destination MAC address range", 12},
	0x90: {"DNN", lenPrefixed},
	0xa0: {"Connection capabilities", lenPrefixed},
	0xa1: {"Destination FQDN", lenPrefixed},
	0xc0: {"OS App Id", lenPrefixed},
}

// Route selection descriptor component types, TS 24.526 table 5.2.1.
var urspRouteComponents = map[byte]struct {
	name string
	size int
}{
	0x01: {"SSC mode", 1},
	0x02: {"S-NSSAI", lenPrefixed},
	0x04: {"DNN", lenPrefixed},
	0x08: {"PDU session type", 1},
	0x10: {"Preferred access type", 1},
	0x20: {"Multi-access preference", 0},
	0x40: {"Non-seamless non-3GPP offload indication", 0},
	0x80: {"Location criteria", lenPrefixed},
}

// decodeUrspRules walks the URSP rule list: each rule carries its own
// 2-octet length, a precedence, a traffic descriptor and a list of
// route selection descriptors, themselves length-delimited.
func decodeUrspRules(content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		ruleLen, ok := cur.ReadUint16()
		if !ok {
			e.Add(NewElement(fmt.Sprintf("URSP rule %d", n), start, cur.Remaining())).
				Fail(FailureMalformedLength, SeverityError, "truncated rule length")
			return
		}
		body, ok := cur.ReadBytes(int(ruleLen))
		if !ok {
			e.Add(NewElement(fmt.Sprintf("URSP rule %d", n), start, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"rule length %d exceeds remaining %d byte(s)", ruleLen, cur.Remaining())
			return
		}
		rule := e.Add(NewElement(fmt.Sprintf("URSP rule %d", n), start, 2+len(body)))
		decodeUrspRuleBody(body, start+2, rule)
	}
}

func decodeUrspRuleBody(body []byte, off int, rule *Element) {
	cur := NewCursor(body)
	prec, ok := cur.ReadByte()
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError, "empty rule body")
		return
	}
	rule.AddValue("Precedence", off, 1, prec)

	tdLen, ok := cur.ReadUint16()
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError, "truncated traffic descriptor length")
		return
	}
	tdStart := off + cur.Offset()
	tdBody, ok := cur.ReadBytes(int(tdLen))
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError,
			"traffic descriptor length %d exceeds remaining %d byte(s)", tdLen, cur.Remaining())
		return
	}
	td := rule.Add(NewElement("Traffic descriptor", tdStart-2, 2+len(tdBody)))
	decodeUrspComponents(tdBody, tdStart, td, urspTrafficComponents)

	rsdListLen, ok := cur.ReadUint16()
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError, "truncated route selection descriptor list length")
		return
	}
	rsdListBody, ok := cur.ReadBytes(int(rsdListLen))
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError,
			"descriptor list length %d exceeds remaining %d byte(s)", rsdListLen, cur.Remaining())
		return
	}

	rcur := NewCursor(rsdListBody)
	base := off + cur.Offset() - len(rsdListBody)
	for n := 1; rcur.Remaining() > 0; n++ {
		start := base + rcur.Offset()
		rsdLen, ok := rcur.ReadUint16()
		if !ok {
			rule.Add(NewElement(fmt.Sprintf("Route selection descriptor %d", n), start, rcur.Remaining())).
				Fail(FailureMalformedLength, SeverityError, "truncated descriptor length")
			return
		}
		rsdBody, ok := rcur.ReadBytes(int(rsdLen))
		if !ok {
			rule.Add(NewElement(fmt.Sprintf("Route selection descriptor %d", n), start, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"descriptor length %d exceeds remaining %d byte(s)", rsdLen, rcur.Remaining())
			return
		}
		rsd := rule.Add(NewElement(fmt.Sprintf("Route selection descriptor %d", n), start, 2+len(rsdBody)))
		if len(rsdBody) == 0 {
			rsd.Fail(FailureMalformedLength, SeverityError, "empty descriptor")
			continue
		}
		rsd.AddValue("Precedence", start+2, 1, rsdBody[0])
		decodeUrspComponents(rsdBody[1:], start+3, rsd, urspRouteComponents)
	}

	if cur.Remaining() > 0 {
		start := off + cur.Offset()
		rest := cur.Rest()
		rule.AddRaw("Extraneous data", start, rest).
			Fail(FailureExtraneousData, SeverityNote, "%d byte(s) after descriptor list", len(rest))
	}
}

func decodeUrspComponents(body []byte, off int, e *Element, table map[byte]struct {
	name string
	size int
}) {
	cur := NewCursor(body)
	for cur.Remaining() > 0 {
		cOff := off + cur.Offset()
		cType, _ := cur.ReadByte()
		comp, known := table[cType]
		if !known {
			e.AddRaw(fmt.Sprintf("Unknown component 0x%02x", cType), cOff, cur.Rest()).
				Fail(FailureNotYetDissected, SeverityNote, "unknown component type")
			return
		}
		var value []byte
		var ok bool
		if comp.size == lenPrefixed {
			value, ok = readLV(cur)
		} else {
			value, ok = cur.ReadBytes(comp.size)
		}
		if !ok {
			e.Add(NewElement(comp.name, cOff, 1+cur.Remaining())).
				Fail(FailureMalformedLength, SeverityError, "component value exceeds remaining buffer")
			return
		}
		if comp.size == 0 {
			e.AddValue(comp.name, cOff, 1, true)
		} else {
			e.AddRaw(comp.name, cOff+1, value)
		}
	}
}

// decodePolicySectionResult walks the command reject result list: per
// sublist a result count, a PLMN and fixed 5-octet failure records.
func decodePolicySectionResult(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		count, ok := cur.ReadByte()
		if !ok {
			return
		}
		plmn, ok := cur.ReadBytes(3)
		if !ok {
			e.Add(NewElement(fmt.Sprintf("Result sublist %d", n), start, 1)).
				Fail(FailureMalformedLength, SeverityError, "truncated PLMN")
			return
		}
		sub := e.Add(NewElement(fmt.Sprintf("Result sublist %d", n), start, 4+int(count)*5))
		sub.AddValue("PLMN", start+1, 3, plmnString(plmn))
		for i := 0; i < int(count); i++ {
			recOff := off + cur.Offset()
			rec, ok := cur.ReadBytes(5)
			if !ok {
				sub.Fail(FailureMalformedLength, SeverityError, "truncated result %d of %d", i+1, count)
				return
			}
			res := sub.Add(NewElement(fmt.Sprintf("Result %d", i+1), recOff, 5))
			res.AddValue("UPSC", recOff, 2, fmt.Sprintf("0x%04x", uint16(rec[0])<<8|uint16(rec[1])))
			res.AddValue("Failed instruction order", recOff+2, 2, uint16(rec[2])<<8|uint16(rec[3]))
			res.AddValue("Cause", recOff+4, 1, fmt.Sprintf("%s (%d)", cause5GMMName(rec[4]), rec[4]))
		}
	}
}

// decodeUpsiList walks per-PLMN sublists of 2-octet UPSC values,
// TS 24.501 clause D.6.4.
func decodeUpsiList(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		subLen, ok := cur.ReadUint16()
		if !ok {
			e.Add(NewElement(fmt.Sprintf("UPSI sublist %d", n), start, cur.Remaining())).
				Fail(FailureMalformedLength, SeverityError, "truncated sublist length")
			return
		}
		body, ok := cur.ReadBytes(int(subLen))
		if !ok {
			e.Add(NewElement(fmt.Sprintf("UPSI sublist %d", n), start, 2)).
				Fail(FailureMalformedLength, SeverityError,
					"sublist length %d exceeds remaining %d byte(s)", subLen, cur.Remaining())
			return
		}
		sub := e.Add(NewElement(fmt.Sprintf("UPSI sublist %d", n), start, 2+len(body)))
		if len(body) < 3 {
			sub.Fail(FailureMalformedLength, SeverityError, "sublist shorter than a PLMN")
			continue
		}
		sub.AddValue("PLMN", start+2, 3, plmnString(body[:3]))
		scur := NewCursor(body[3:])
		for scur.Remaining() > 0 {
			upscOff := start + 5 + scur.Offset()
			upsc, ok := scur.ReadUint16()
			if !ok {
				sub.Fail(FailureMalformedLength, SeverityError, "dangling odd octet in UPSC list")
				break
			}
			sub.AddValue("UPSC", upscOff, 2, fmt.Sprintf("0x%04x", upsc))
		}
	}
}

func decodeOsId(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 16 {
		e.Fail(FailureMalformedLength, SeverityError, "OS Id needs 16 octets, got %d", len(content))
		e.Raw = content
		return
	}
	e.AddRaw("OS Id (UUID)", off, content[:16])
}
