package nas

import (
	"fmt"
	"strings"
)

// Catalog identifiers shared across sub-protocols.
const (
	elemSpareHalfOctet ElemID = 0x000 + iota
	elemSNssai
	elemNssai
	elemTaiList
	elemGprsTimer
	elemGprsTimer2
	elemGprsTimer3
	elemDnn
	elemPlmnList
	elemEapMessage
)

var commonIEs = map[ElemID]ieDescriptor{
	elemSpareHalfOctet: {name: "Spare half octet", size: halfOctet},
	elemSNssai:         {name: "S-NSSAI", decode: decodeSNssai},
	elemNssai:          {name: "NSSAI", decode: decodeNssai},
	elemTaiList:        {name: "5GS tracking area identity list", decode: decodeTaiList},
	elemGprsTimer:      {name: "GPRS timer", size: 1, decode: decodeGprsTimer},
	elemGprsTimer2:     {name: "GPRS timer 2", decode: decodeGprsTimer2},
	elemGprsTimer3:     {name: "GPRS timer 3", decode: decodeGprsTimer3},
	elemDnn:            {name: "DNN", decode: decodeDnn},
	elemPlmnList:       {name: "PLMN list", decode: decodePlmnList},
	elemEapMessage:     {name: "EAP message"},
}

// bcdDigits expands swapped-nibble BCD octets, dropping 0xf fillers.
func bcdDigits(b []byte) string {
	var sb strings.Builder
	for _, o := range b {
		lo, hi := o&0x0f, o>>4
		if lo != 0x0f {
			sb.WriteByte('0' + lo)
		}
		if hi != 0x0f {
			sb.WriteByte('0' + hi)
		}
	}
	return sb.String()
}

// plmnString renders a 3-octet BCD PLMN as "MCC-MNC". A 2-digit MNC
// carries 0xf filler in the third digit position.
func plmnString(b []byte) string {
	if len(b) < 3 {
		return "?"
	}
	mcc := fmt.Sprintf("%d%d%d", b[0]&0x0f, b[0]>>4, b[1]&0x0f)
	mnc := fmt.Sprintf("%d%d", b[2]&0x0f, b[2]>>4)
	if b[1]>>4 != 0x0f {
		mnc += fmt.Sprintf("%d", b[1]>>4)
	}
	return mcc + "-" + mnc
}

// decodeSNssaiContent decodes one S-NSSAI value whose total size
// discriminates which of SST / SD / mapped fields are present,
// TS 24.501 clause 9.11.2.8.
func decodeSNssaiContent(content []byte, off int, e *Element) {
	cur := NewCursor(content)
	sst, ok := cur.ReadByte()
	if !ok {
		e.Fail(FailureMalformedLength, SeverityError, "empty S-NSSAI")
		return
	}
	e.AddValue("SST", off, 1, sst)
	switch len(content) {
	case 1:
	case 2:
		b, _ := cur.ReadByte()
		e.AddValue("Mapped HPLMN SST", off+1, 1, b)
	case 4:
		sd, _ := cur.ReadBytes(3)
		e.AddValue("SD", off+1, 3, fmt.Sprintf("%06x", sd))
	case 5:
		sd, _ := cur.ReadBytes(3)
		e.AddValue("SD", off+1, 3, fmt.Sprintf("%06x", sd))
		b, _ := cur.ReadByte()
		e.AddValue("Mapped HPLMN SST", off+4, 1, b)
	case 8:
		sd, _ := cur.ReadBytes(3)
		e.AddValue("SD", off+1, 3, fmt.Sprintf("%06x", sd))
		b, _ := cur.ReadByte()
		e.AddValue("Mapped HPLMN SST", off+4, 1, b)
		msd, _ := cur.ReadBytes(3)
		e.AddValue("Mapped HPLMN SD", off+5, 3, fmt.Sprintf("%06x", msd))
	default:
		e.Fail(FailureMalformedValue, SeverityWarning, "unexpected S-NSSAI size %d", len(content))
		e.Raw = content
	}
}

func decodeSNssai(dc *decodeContext, content []byte, off int, e *Element) {
	decodeSNssaiContent(content, off, e)
}

// decodeNssai walks the length-governed list of S-NSSAI entries,
// TS 24.501 clause 9.11.3.37.
func decodeNssai(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for i := 1; cur.Remaining() > 0; i++ {
		start := off + cur.Offset()
		entry, ok := readLV(cur)
		if !ok {
			e.Add(NewElement(fmt.Sprintf("S-NSSAI %d", i), start, 1)).
				Fail(FailureMalformedLength, SeverityError, "entry length exceeds remaining buffer")
			return
		}
		sub := e.Add(NewElement(fmt.Sprintf("S-NSSAI %d", i), start, 1+len(entry)))
		decodeSNssaiContent(entry, start+1, sub)
	}
}

// decodeTaiList decodes the 5GS tracking area identity list,
// TS 24.501 clause 9.11.3.9: a sequence of partial lists, each holding
// PLMN/TAC combinations per its list type.
func decodeTaiList(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		head, _ := cur.ReadByte()
		listType := (head >> 5) & 0x03
		count := int(head&0x1f) + 1
		part := e.Add(NewElement(fmt.Sprintf("Partial tracking area identity list %d", n), start, 1))

		switch listType {
		case 0: // one PLMN, list of TACs
			plmn, ok := cur.ReadBytes(3)
			if !ok {
				part.Fail(FailureMalformedLength, SeverityError, "truncated PLMN")
				return
			}
			part.AddValue("PLMN", start+1, 3, plmnString(plmn))
			for i := 0; i < count; i++ {
				tacOff := off + cur.Offset()
				tac, ok := cur.ReadBytes(3)
				if !ok {
					part.Fail(FailureMalformedLength, SeverityError, "truncated TAC %d of %d", i+1, count)
					return
				}
				part.AddValue("TAC", tacOff, 3, fmt.Sprintf("%06x", tac))
			}
		case 1: // one PLMN, consecutive TACs; only the first is present
			plmn, ok := cur.ReadBytes(3)
			if !ok {
				part.Fail(FailureMalformedLength, SeverityError, "truncated PLMN")
				return
			}
			part.AddValue("PLMN", start+1, 3, plmnString(plmn))
			tacOff := off + cur.Offset()
			tac, ok := cur.ReadBytes(3)
			if !ok {
				part.Fail(FailureMalformedLength, SeverityError, "truncated TAC")
				return
			}
			part.AddValue("First TAC", tacOff, 3, fmt.Sprintf("%06x", tac))
			part.AddValue("Number of consecutive TACs", start, 1, count)
		case 2: // list of TAIs
			for i := 0; i < count; i++ {
				taiOff := off + cur.Offset()
				tai, ok := cur.ReadBytes(6)
				if !ok {
					part.Fail(FailureMalformedLength, SeverityError, "truncated TAI %d of %d", i+1, count)
					return
				}
				part.AddValue("TAI", taiOff, 6,
					fmt.Sprintf("%s / %02x%02x%02x", plmnString(tai[:3]), tai[3], tai[4], tai[5]))
			}
		default:
			part.Fail(FailureMalformedValue, SeverityWarning, "reserved partial list type 3")
			part.Raw = cur.Rest()
			return
		}
		part.Length = off + cur.Offset() - start
	}
}

var gprsTimerUnits = []string{
	"2 seconds", "1 minute", "decihours", "", "", "", "", "deactivated",
}

func decodeGprsTimer(dc *decodeContext, content []byte, off int, e *Element) {
	b := content[0]
	unit := b >> 5
	value := b & 0x1f
	name := gprsTimerUnits[unit]
	if name == "" {
		name = "1 minute" // values 3..6 are interpreted as 1 minute multiples
	}
	e.Value = fmt.Sprintf("%d (unit: %s)", value, name)
}

func decodeGprsTimer2(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 1 {
		e.Fail(FailureMalformedLength, SeverityError, "empty timer value")
		return
	}
	e.Value = content[0]
}

var gprsTimer3Units = []string{
	"10 minutes", "1 hour", "10 hours", "2 seconds", "30 seconds", "1 minute", "320 hours", "deactivated",
}

func decodeGprsTimer3(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 1 {
		e.Fail(FailureMalformedLength, SeverityError, "empty timer value")
		return
	}
	b := content[0]
	e.Value = fmt.Sprintf("%d (unit: %s)", b&0x1f, gprsTimer3Units[b>>5])
}

// decodeDnn expands the label-length-prefixed DNN encoding into the
// dotted form, TS 23.003.
func decodeDnn(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	var labels []string
	for cur.Remaining() > 0 {
		label, ok := readLV(cur)
		if !ok {
			e.Fail(FailureMalformedLength, SeverityError, "label length exceeds remaining buffer")
			e.Raw = content
			return
		}
		labels = append(labels, string(label))
	}
	e.Value = strings.Join(labels, ".")
}

func decodePlmnList(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for cur.Remaining() > 0 {
		start := off + cur.Offset()
		plmn, ok := cur.ReadBytes(3)
		if !ok {
			e.Fail(FailureMalformedLength, SeverityError, "truncated PLMN entry")
			return
		}
		e.AddValue("PLMN", start, 3, plmnString(plmn))
	}
}
