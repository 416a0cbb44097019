package nas

// The executor walks a message table against the remaining buffer. The
// mandatory phase consumes slots unconditionally in table order; the
// optional phase peeks one octet and tries the remaining slots in table
// order, first match wins. Every octet ends up attributed to an element
// or reported as extraneous trailing data.

// ieExecutor carries the explicit walk state: the next optional slot to
// try and the pending half-octet left over from a low-nibble V element.
type ieExecutor struct {
	dc      *decodeContext
	proto   Protocol
	cur     *Cursor
	desc    *msgDescriptor
	msg     *Element
	nextOpt int
	// high nibble of the octet at pendingOff, not yet consumed
	pending    bool
	pendingVal byte
	pendingOff int
}

func runMessageIEs(dc *decodeContext, proto Protocol, cur *Cursor, desc *msgDescriptor, msg *Element) {
	ex := &ieExecutor{dc: dc, proto: proto, cur: cur, desc: desc, msg: msg}
	ex.mandatoryPhase()
	ex.optionalPhase()
	ex.trailing()
}

func (ex *ieExecutor) slotName(s ieSlot, d ieDescriptor) string {
	if s.name != "" {
		return s.name
	}
	return d.name
}

func (ex *ieExecutor) mandatoryPhase() {
	for i, s := range ex.desc.slots {
		if s.optional {
			ex.nextOpt = i
			return
		}
		ex.decodeMandatory(s)
	}
	ex.nextOpt = len(ex.desc.slots)
}

func (ex *ieExecutor) decodeMandatory(s ieSlot) {
	d, ok := lookupIE(ex.proto, s.id)
	if !ok {
		// table references an uncataloged element; surface, do not consume
		ex.msg.Add(NewElement("unknown element", ex.cur.Offset(), 0)).
			Fail(FailureUnknownInformationElement, SeverityError, "no catalog entry for element %d", s.id)
		return
	}
	name := ex.slotName(s, d)
	start := ex.cur.Offset()

	if s.format == FormatV && d.size == halfOctet {
		ex.decodeHalfOctet(name, d)
		return
	}
	ex.pending = false

	if ex.cur.Remaining() == 0 {
		ex.msg.Add(NewElement(name, start, 0)).
			Fail(FailureMissingMandatoryElement, SeverityWarning, "buffer exhausted before mandatory element")
		return
	}

	var content []byte
	var ok2 bool
	switch s.format {
	case FormatV:
		content, ok2 = readV(ex.cur, d.size)
	case FormatLV:
		content, ok2 = readLV(ex.cur)
	case FormatLVE:
		content, ok2 = readLVE(ex.cur)
	default:
		// tagged formats are never mandatory in TS 24.501 tables
		content, ok2 = nil, false
	}
	if !ok2 {
		e := ex.msg.Add(NewElement(name, start, ex.cur.Offset()-start))
		e.Fail(FailureMalformedLength, SeverityError, "declared length exceeds remaining buffer")
		e.Raw = ex.cur.Rest()
		e.Length = ex.cur.Offset() - start
		return
	}
	ex.emit(name, d, start, content)
}

// decodeHalfOctet handles V elements that occupy four bits. Two
// consecutive half-octet slots share one octet, low nibble first.
func (ex *ieExecutor) decodeHalfOctet(name string, d ieDescriptor) {
	if ex.pending {
		ex.pending = false
		ex.emitNibble(name, d, ex.pendingOff, ex.pendingVal)
		return
	}
	start := ex.cur.Offset()
	b, ok := ex.cur.ReadByte()
	if !ok {
		ex.msg.Add(NewElement(name, start, 0)).
			Fail(FailureMissingMandatoryElement, SeverityWarning, "buffer exhausted before mandatory element")
		return
	}
	ex.pending = true
	ex.pendingVal = b >> 4
	ex.pendingOff = start
	ex.emitNibble(name, d, start, b&0x0f)
}

func (ex *ieExecutor) emitNibble(name string, d ieDescriptor, off int, nibble byte) {
	e := ex.msg.Add(NewElement(name, off, 1))
	if d.decode != nil {
		d.decode(ex.dc, []byte{nibble}, off, e)
	} else {
		e.Value = nibble
	}
}

func (ex *ieExecutor) emit(name string, d ieDescriptor, start int, content []byte) {
	e := ex.msg.Add(NewElement(name, start, ex.cur.Offset()-start))
	if d.decode != nil {
		d.decode(ex.dc, content, ex.cur.Offset()-len(content), e)
	} else if len(content) > 0 {
		e.Raw = content
	}
}

func (ex *ieExecutor) optionalPhase() {
	for ex.cur.Remaining() > 0 {
		tag, _ := ex.cur.Peek()
		matched := false
		for i := ex.nextOpt; i < len(ex.desc.slots); i++ {
			s := ex.desc.slots[i]
			if !s.optional || !slotTagMatches(s, tag) {
				continue
			}
			ex.decodeOptional(s)
			ex.nextOpt = i + 1
			matched = true
			break
		}
		if !matched {
			// a tag no remaining slot recognizes ends the optional
			// phase; what is left becomes trailing data
			return
		}
	}
}

// slotTagMatches applies the tag discrimination rule: 4-bit tags are
// compared against the high nibble, full tags against the whole octet.
func slotTagMatches(s ieSlot, tag byte) bool {
	if s.iei <= 0x0f {
		return tag>>4 == s.iei
	}
	return tag == s.iei
}

func (ex *ieExecutor) decodeOptional(s ieSlot) {
	d, ok := lookupIE(ex.proto, s.id)
	if !ok {
		ex.msg.Add(NewElement("unknown element", ex.cur.Offset(), 0)).
			Fail(FailureUnknownInformationElement, SeverityError, "no catalog entry for element %d", s.id)
		ex.cur.Skip(1)
		return
	}
	name := ex.slotName(s, d)
	start := ex.cur.Offset()

	var content []byte
	var ok2 bool
	switch s.format {
	case FormatTV:
		content, ok2 = readTV(ex.cur, d.size)
	case FormatTLV:
		content, ok2 = readTLV(ex.cur)
	case FormatTLVE:
		content, ok2 = readTLVE(ex.cur)
	default:
		content, ok2 = nil, false
	}
	if !ok2 {
		e := ex.msg.Add(NewElement(name, start, ex.cur.Offset()-start))
		e.Fail(FailureMalformedLength, SeverityError, "declared length exceeds remaining buffer")
		e.Raw = ex.cur.Rest()
		e.Length = ex.cur.Offset() - start
		return
	}
	ex.emit(name, d, start, content)
}

// trailing reports bytes no remaining slot could claim.
func (ex *ieExecutor) trailing() {
	if ex.cur.Remaining() == 0 {
		return
	}
	start := ex.cur.Offset()
	rest := ex.cur.Rest()
	ex.msg.AddRaw("Extraneous data", start, rest).
		Fail(FailureExtraneousData, SeverityNote, "%d trailing byte(s) not covered by the message table", len(rest))
}
