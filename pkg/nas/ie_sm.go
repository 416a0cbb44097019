package nas

import "fmt"

// 5GSM catalog identifiers.
const (
	elemPduSessionType ElemID = 0x200 + iota
	elemSscMode
	elemQosRules
	elemQosFlowDescriptions
	elemSessionAmbr
	elemSMCause
	elemPduAddress
	elemAlwaysOnIndication
	elemMappedEpsBearerContexts
	elemEpco
	elemSmNetworkFeatureSupport
	elemServingPlmnRateControl
	elemAtsssContainer
	elemControlPlaneOnlyIndication
	elemIpHeaderCompressionConfiguration
	elemEthernetHeaderCompressionConfiguration
	elemMaxSupportedPacketFilters
	elemIntegrityProtectionMaxDataRate
	elemSmCapability
	elemAllowedSscMode
	elemReattemptIndicator
	elemSmPduDnRequestContainer
)

var smIEs = map[ElemID]ieDescriptor{
	elemPduSessionType:          {name: "PDU session type", size: halfOctet, decode: decodePduSessionType},
	elemSscMode:                 {name: "SSC mode", size: halfOctet, decode: decodeSscMode},
	elemQosRules:                {name: "QoS rules", decode: decodeQosRules},
	elemQosFlowDescriptions:     {name: "QoS flow descriptions", decode: decodeQosFlowDescriptions},
	elemSessionAmbr:             {name: "Session-AMBR", decode: decodeSessionAmbr},
	elemSMCause:                 {name: "5GSM cause", size: 1, decode: decodeSMCause},
	elemPduAddress:              {name: "PDU address", decode: decodePduAddress},
	elemAlwaysOnIndication:      {name: "Always-on PDU session indication", size: halfOctet, decode: decodeValueOctet},
	elemMappedEpsBearerContexts: {name: "Mapped EPS bearer contexts", decode: decodeMappedEpsBearerContexts},
	elemEpco:                    {name: "Extended protocol configuration options", decode: decodeEpco},
	elemSmNetworkFeatureSupport: {name: "5GSM network feature support", decode: decodeValueFirstOctet},
	elemServingPlmnRateControl:  {name: "Serving PLMN rate control", decode: decodeServingPlmnRateControl},
	elemAtsssContainer:          {name: "ATSSS container", decode: decodeNotYetDissected},
	elemControlPlaneOnlyIndication: {
		name: "Control plane only indication", size: halfOctet, decode: decodeValueOctet,
	},
	elemIpHeaderCompressionConfiguration: {name: "IP header compression configuration", decode: decodeNotYetDissected},
	elemEthernetHeaderCompressionConfiguration: {
		name: "Ethernet header compression configuration", decode: decodeValueFirstOctet,
	},
	elemMaxSupportedPacketFilters:      {name: "Maximum number of supported packet filters", size: 2, decode: decodeMaxPacketFilters},
	elemIntegrityProtectionMaxDataRate: {name: "Integrity protection maximum data rate", size: 2, decode: decodeIntegrityMaxDataRate},
	elemSmCapability:                   {name: "5GSM capability", decode: decodeValueFirstOctet},
	elemAllowedSscMode:                 {name: "Allowed SSC mode", size: halfOctet, decode: decodeAllowedSscMode},
	elemReattemptIndicator:             {name: "Re-attempt indicator", decode: decodeValueFirstOctet},
	elemSmPduDnRequestContainer:        {name: "SM PDU DN request container"},
}

var pduSessionTypeNames = map[byte]string{
	1: "IPv4",
	2: "IPv6",
	3: "IPv4v6",
	4: "Unstructured",
	5: "Ethernet",
	7: "reserved",
}

func decodePduSessionType(dc *decodeContext, content []byte, off int, e *Element) {
	name, ok := pduSessionTypeNames[content[0]&0x07]
	if !ok {
		name = fmt.Sprintf("unknown (%d)", content[0]&0x07)
	}
	e.Value = name
}

func decodeSscMode(dc *decodeContext, content []byte, off int, e *Element) {
	e.Value = content[0] & 0x07
}

func decodeAllowedSscMode(dc *decodeContext, content []byte, off int, e *Element) {
	var modes []int
	for i := 0; i < 3; i++ {
		if content[0]&(1<<i) != 0 {
			modes = append(modes, i+1)
		}
	}
	e.Value = modes
}

func decodeSMCause(dc *decodeContext, content []byte, off int, e *Element) {
	e.Value = fmt.Sprintf("%s (%d)", cause5GSMName(content[0]), content[0])
}

// QoS rule operation codes, TS 24.501 clause 9.11.4.13.
const (
	qosOpCreate               = 1
	qosOpDeleteExisting       = 2
	qosOpModifyAddFilters     = 3
	qosOpModifyReplaceFilters = 4
	qosOpModifyDeleteFilters  = 5
	qosOpModifyNoFilters      = 6
)

var qosRuleOpNames = map[byte]string{
	qosOpCreate:               "Create new QoS rule",
	qosOpDeleteExisting:       "Delete existing QoS rule",
	qosOpModifyAddFilters:     "Modify existing QoS rule and add packet filters",
	qosOpModifyReplaceFilters: "Modify existing QoS rule and replace all packet filters",
	qosOpModifyDeleteFilters:  "Modify existing QoS rule and delete packet filters",
	qosOpModifyNoFilters:      "Modify existing QoS rule without modifying packet filters",
}

// Packet filter component types with their fixed content widths,
// TS 24.501 table 9.11.4.13.1. Unknown types keep the remainder of the
// filter opaque.
var packetFilterComponents = map[byte]struct {
	name string
	size int
}{
	0x01: {"Match-all", 0},
	0x10: {"IPv4 remote address", 8},
	0x11: {"IPv4 local address", 8},
	0x21: {"IPv6 remote address/prefix length", 17},
	0x23: {"IPv6 local address/prefix length", 17},
	0x30: {"Protocol identifier/Next header", 1},
	0x40: {"Single local port", 2},
	0x41: {"Local port range", 4},
	0x50: {"Single remote port", 2},
	0x51: {"Remote port range", 4},
	0x60: {"Security parameter index", 4},
	0x70: {"Type of service/Traffic class", 2},
	0x80: {"Flow label", 3},
	0x81: {"Destination MAC address", 6},
	0x82: {"Source MAC address", 6},
	0x83: {"802.1Q C-TAG VID", 2},
	0x84: {"802.1Q S-TAG VID", 2},
	0x85: {"802.1Q C-TAG PCP/DEI", 1},
	0x86: {"802.1Q S-TAG PCP/DEI", 1},
	0x87: {"Ethertype", 2},
	0x88: {"Destination MAC address range", 12},
	0x89: {"Source MAC address range", 12},
}

// decodeQosRules walks the authorized/requested QoS rule list. Each
// rule carries its own length, so a malformed rule body aborts only
// that rule while the walk resumes at the next declared boundary.
func decodeQosRules(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		ruleId, ok := cur.ReadByte()
		if !ok {
			return
		}
		ruleLen, ok := cur.ReadUint16()
		if !ok {
			e.Add(NewElement(fmt.Sprintf("QoS rule %d", n), start, 1)).
				Fail(FailureMalformedLength, SeverityError, "truncated rule header")
			return
		}
		rule := e.Add(NewElement(fmt.Sprintf("QoS rule %d", n), start, 3+int(ruleLen)))
		rule.AddValue("QoS rule identifier", start, 1, ruleId)
		body, ok := cur.ReadBytes(int(ruleLen))
		if !ok {
			rule.Fail(FailureMalformedLength, SeverityError,
				"rule length %d exceeds remaining %d byte(s)", ruleLen, cur.Remaining())
			return
		}
		decodeQosRuleBody(body, start+3, rule)
	}
}

func decodeQosRuleBody(body []byte, off int, rule *Element) {
	cur := NewCursor(body)
	head, ok := cur.ReadByte()
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError, "empty rule body")
		return
	}
	op := head >> 5
	numFilters := int(head & 0x0f)
	opName, known := qosRuleOpNames[op]
	if !known {
		opName = fmt.Sprintf("reserved (%d)", op)
	}
	rule.AddValue("Rule operation code", off, 1, opName)
	rule.AddValue("DQR", off, 1, head&0x10 != 0)
	rule.AddValue("Number of packet filters", off, 1, numFilters)

	switch op {
	case qosOpDeleteExisting, qosOpModifyNoFilters:
		if numFilters != 0 {
			rule.Fail(FailureMalformedValue, SeverityError,
				"operation %q must carry zero packet filters, got %d", opName, numFilters)
			// the declared rule length still bounds this entry; skip its body
			return
		}
	case qosOpModifyDeleteFilters:
		for i := 0; i < numFilters; i++ {
			idOff := off + cur.Offset()
			id, ok := cur.ReadByte()
			if !ok {
				rule.Fail(FailureMalformedLength, SeverityError, "truncated packet filter identifier list")
				return
			}
			rule.AddValue("Packet filter identifier", idOff, 1, id&0x0f)
		}
	default:
		for i := 0; i < numFilters; i++ {
			if !decodePacketFilter(cur, off, i+1, rule) {
				return
			}
		}
	}

	if cur.Remaining() > 0 {
		prec, _ := cur.ReadByte()
		rule.AddValue("QoS rule precedence", off+cur.Offset()-1, 1, prec)
	}
	if cur.Remaining() > 0 {
		b, _ := cur.ReadByte()
		rule.AddValue("QFI", off+cur.Offset()-1, 1, b&0x3f)
		rule.AddValue("Segregation", off+cur.Offset()-1, 1, b&0x40 != 0)
	}
}

// decodePacketFilter consumes one packet filter: a direction/identifier
// octet, a length octet, then typed components until the filter length
// is exhausted.
func decodePacketFilter(cur *Cursor, off, n int, rule *Element) bool {
	start := off + cur.Offset()
	head, ok := cur.ReadByte()
	if !ok {
		rule.Fail(FailureMalformedLength, SeverityError, "truncated packet filter %d", n)
		return false
	}
	filter := rule.Add(NewElement(fmt.Sprintf("Packet filter %d", n), start, 1))
	var dir string
	switch (head >> 4) & 0x03 {
	case 1:
		dir = "downlink only"
	case 2:
		dir = "uplink only"
	case 3:
		dir = "bidirectional"
	default:
		dir = "reserved"
	}
	filter.AddValue("Direction", start, 1, dir)
	filter.AddValue("Packet filter identifier", start, 1, head&0x0f)

	fLen, ok := cur.ReadByte()
	if !ok {
		filter.Fail(FailureMalformedLength, SeverityError, "truncated packet filter length")
		return false
	}
	body, ok := cur.ReadBytes(int(fLen))
	if !ok {
		filter.Fail(FailureMalformedLength, SeverityError,
			"filter length %d exceeds remaining %d byte(s)", fLen, cur.Remaining())
		return false
	}
	filter.Length = 2 + len(body)

	fcur := NewCursor(body)
	for fcur.Remaining() > 0 {
		cOff := start + 2 + fcur.Offset()
		cType, _ := fcur.ReadByte()
		comp, known := packetFilterComponents[cType]
		if !known {
			// unknown component: keep the remainder of the filter opaque
			filter.AddRaw(fmt.Sprintf("Unknown component 0x%02x", cType), cOff, fcur.Rest()).
				Fail(FailureNotYetDissected, SeverityNote, "unknown packet filter component type")
			break
		}
		value, ok := fcur.ReadBytes(comp.size)
		if !ok {
			filter.Add(NewElement(comp.name, cOff, 1+fcur.Remaining())).
				Fail(FailureMalformedLength, SeverityError,
					"component needs %d byte(s), %d remain in filter", comp.size, fcur.Remaining())
			break
		}
		if comp.size == 0 {
			filter.AddValue(comp.name, cOff, 1, true)
		} else {
			filter.AddRaw(comp.name, cOff+1, value)
		}
	}
	return true
}

var qosFlowOpNames = map[byte]string{
	1: "Create new QoS flow description",
	2: "Delete existing QoS flow description",
	3: "Modify existing QoS flow description",
}

var qosFlowParamNames = map[byte]string{
	1: "5QI",
	2: "GFBR uplink",
	3: "GFBR downlink",
	4: "MFBR uplink",
	5: "MFBR downlink",
	6: "Averaging window",
	7: "EPS bearer identity",
}

// decodeQosFlowDescriptions walks the flow description list,
// TS 24.501 clause 9.11.4.12: QFI, operation code, parameter count,
// then id/length/content parameter triplets.
func decodeQosFlowDescriptions(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		desc := e.Add(NewElement(fmt.Sprintf("QoS flow description %d", n), start, 0))

		qfi, ok := cur.ReadByte()
		if !ok {
			desc.Fail(FailureMalformedLength, SeverityError, "truncated QFI")
			return
		}
		desc.AddValue("QFI", start, 1, qfi&0x3f)

		op, ok := cur.ReadByte()
		if !ok {
			desc.Fail(FailureMalformedLength, SeverityError, "truncated operation code")
			return
		}
		opName, known := qosFlowOpNames[op>>5]
		if !known {
			opName = fmt.Sprintf("reserved (%d)", op>>5)
		}
		desc.AddValue("Operation code", start+1, 1, opName)

		pHead, ok := cur.ReadByte()
		if !ok {
			desc.Fail(FailureMalformedLength, SeverityError, "truncated parameter count")
			return
		}
		numParams := int(pHead & 0x3f)
		desc.AddValue("E bit", start+2, 1, pHead&0x40 != 0)
		desc.AddValue("Number of parameters", start+2, 1, numParams)

		for i := 0; i < numParams; i++ {
			pOff := off + cur.Offset()
			pid, ok := cur.ReadByte()
			if !ok {
				desc.Fail(FailureMalformedLength, SeverityError, "truncated parameter %d", i+1)
				return
			}
			pVal, ok := readLV(cur)
			if !ok {
				desc.Fail(FailureMalformedLength, SeverityError,
					"parameter %d length exceeds remaining buffer", i+1)
				return
			}
			name, known := qosFlowParamNames[pid]
			if !known {
				name = fmt.Sprintf("Parameter 0x%02x", pid)
			}
			desc.AddRaw(name, pOff, pVal)
		}
		desc.Length = off + cur.Offset() - start
	}
}

var ambrUnitNames = map[byte]string{
	0x00: "value not used",
	0x01: "1 Kbps",
	0x02: "4 Kbps",
	0x03: "16 Kbps",
	0x04: "64 Kbps",
	0x05: "256 Kbps",
	0x06: "1 Mbps",
	0x07: "4 Mbps",
	0x08: "16 Mbps",
	0x09: "64 Mbps",
	0x0a: "256 Mbps",
	0x0b: "1 Gbps",
	0x0c: "4 Gbps",
	0x0d: "16 Gbps",
	0x0e: "64 Gbps",
	0x0f: "256 Gbps",
	0x10: "1 Tbps",
	0x11: "4 Tbps",
	0x12: "16 Tbps",
	0x13: "64 Tbps",
	0x14: "256 Tbps",
	0x15: "1 Pbps",
	0x16: "4 Pbps",
	0x17: "16 Pbps",
	0x18: "64 Pbps",
	0x19: "256 Pbps",
}

func ambrString(unit byte, value uint16) string {
	name, ok := ambrUnitNames[unit]
	if !ok {
		name = fmt.Sprintf("unit 0x%02x", unit)
	}
	return fmt.Sprintf("%d x %s", value, name)
}

func decodeSessionAmbr(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 6 {
		e.Fail(FailureMalformedLength, SeverityError, "Session-AMBR needs 6 octets, got %d", len(content))
		e.Raw = content
		return
	}
	e.AddValue("Downlink", off, 3, ambrString(content[0], uint16(content[1])<<8|uint16(content[2])))
	e.AddValue("Uplink", off+3, 3, ambrString(content[3], uint16(content[4])<<8|uint16(content[5])))
}

// decodePduAddress decodes the assigned address, TS 24.501 clause
// 9.11.4.10. IPv6 carries only the interface identifier.
func decodePduAddress(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty PDU address")
		return
	}
	addrType := content[0] & 0x07
	rest := content[1:]
	switch addrType {
	case 1:
		if len(rest) < 4 {
			e.Fail(FailureMalformedLength, SeverityError, "IPv4 address needs 4 octets")
			e.Raw = content
			return
		}
		e.AddValue("IPv4 address", off+1, 4, fmt.Sprintf("%d.%d.%d.%d", rest[0], rest[1], rest[2], rest[3]))
	case 2:
		if len(rest) < 8 {
			e.Fail(FailureMalformedLength, SeverityError, "IPv6 interface identifier needs 8 octets")
			e.Raw = content
			return
		}
		e.AddRaw("IPv6 interface identifier", off+1, rest[:8])
	case 3:
		if len(rest) < 12 {
			e.Fail(FailureMalformedLength, SeverityError, "IPv4v6 address needs 12 octets")
			e.Raw = content
			return
		}
		e.AddRaw("IPv6 interface identifier", off+1, rest[:8])
		e.AddValue("IPv4 address", off+9, 4, fmt.Sprintf("%d.%d.%d.%d", rest[8], rest[9], rest[10], rest[11]))
	default:
		e.Fail(FailureMalformedValue, SeverityWarning, "unknown PDU address type %d", addrType)
		e.Raw = content
	}
}

var mappedEpsBearerOpNames = map[byte]string{
	1: "Create new EPS bearer",
	2: "Delete existing EPS bearer",
	3: "Modify existing EPS bearer",
}

// decodeMappedEpsBearerContexts walks bearer contexts, TS 24.501
// clause 9.11.4.8: EBI, a 2-octet context length, then an operation
// header and id/length/content parameters.
func decodeMappedEpsBearerContexts(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		ebi, ok := cur.ReadByte()
		if !ok {
			return
		}
		ctxLen, ok := cur.ReadUint16()
		if !ok {
			e.Add(NewElement(fmt.Sprintf("Mapped EPS bearer context %d", n), start, 1)).
				Fail(FailureMalformedLength, SeverityError, "truncated context header")
			return
		}
		ctx := e.Add(NewElement(fmt.Sprintf("Mapped EPS bearer context %d", n), start, 3+int(ctxLen)))
		ctx.AddValue("EPS bearer identity", start, 1, ebi>>4)
		body, ok := cur.ReadBytes(int(ctxLen))
		if !ok {
			ctx.Fail(FailureMalformedLength, SeverityError,
				"context length %d exceeds remaining %d byte(s)", ctxLen, cur.Remaining())
			return
		}

		bcur := NewCursor(body)
		head, ok2 := bcur.ReadByte()
		if !ok2 {
			ctx.Fail(FailureMalformedLength, SeverityError, "empty context body")
			continue
		}
		opName, known := mappedEpsBearerOpNames[head>>6]
		if !known {
			opName = fmt.Sprintf("reserved (%d)", head>>6)
		}
		ctx.AddValue("Operation code", start+3, 1, opName)
		ctx.AddValue("E bit", start+3, 1, head&0x20 != 0)
		numParams := int(head & 0x0f)
		for i := 0; i < numParams; i++ {
			pOff := start + 3 + bcur.Offset()
			pid, ok := bcur.ReadByte()
			if !ok {
				ctx.Fail(FailureMalformedLength, SeverityError, "truncated parameter %d", i+1)
				break
			}
			pVal, ok := readLV(bcur)
			if !ok {
				ctx.Fail(FailureMalformedLength, SeverityError,
					"parameter %d length exceeds remaining context", i+1)
				break
			}
			ctx.AddRaw(fmt.Sprintf("EPS parameter 0x%02x", pid), pOff, pVal)
		}
	}
}

// decodeEpco expands extended protocol configuration options into
// protocol/container units, TS 24.008 clause 10.5.6.3A.
func decodeEpco(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	head, ok := cur.ReadByte()
	if !ok {
		e.Fail(FailureMalformedLength, SeverityError, "empty configuration options")
		return
	}
	e.AddValue("Configuration protocol", off, 1, head&0x07)
	for cur.Remaining() > 0 {
		start := off + cur.Offset()
		id, ok := cur.ReadUint16()
		if !ok {
			e.Fail(FailureMalformedLength, SeverityError, "truncated container identifier")
			return
		}
		val, ok := readLV(cur)
		if !ok {
			e.Fail(FailureMalformedLength, SeverityError,
				"container 0x%04x length exceeds remaining buffer", id)
			return
		}
		unit := e.Add(NewElement(fmt.Sprintf("Container 0x%04x", id), start, 3+len(val)))
		unit.Raw = val
	}
}

func decodeServingPlmnRateControl(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 2 {
		e.Fail(FailureMalformedLength, SeverityError, "serving PLMN rate control needs 2 octets")
		return
	}
	e.Value = uint16(content[0])<<8 | uint16(content[1])
}

func decodeMaxPacketFilters(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 2 {
		e.Fail(FailureMalformedLength, SeverityError, "maximum packet filters needs 2 octets")
		return
	}
	// 11-bit value, left aligned
	e.Value = uint16(content[0])<<3 | uint16(content[1])>>5
}

var integrityRateNames = map[byte]string{
	0x00: "64 kbps",
	0xff: "full data rate",
}

func decodeIntegrityMaxDataRate(dc *decodeContext, content []byte, off int, e *Element) {
	for i, dir := range []string{"uplink", "downlink"} {
		name, ok := integrityRateNames[content[i]]
		if !ok {
			name = fmt.Sprintf("reserved (0x%02x)", content[i])
		}
		e.AddValue("Maximum data rate per UE for user-plane integrity protection ("+dir+")", off+i, 1, name)
	}
}
