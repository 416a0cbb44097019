package nas

import "fmt"

// 5GMM catalog identifiers.
const (
	elemRegistrationType ElemID = 0x100 + iota
	elemNgKsi
	elemMobileIdentity
	elemMMCapability
	elemUeSecurityCapability
	elemMMCause
	elemSecurityAlgorithms
	elemImeisvRequest
	elemAbba
	elemAuthRand
	elemAuthAutn
	elemAuthResponseParam
	elemAuthFailureParam
	elemRegistrationResult
	elemPsiBitmap
	elemMicoIndication
	elemNetworkSlicingIndication
	elemNssaiInclusionMode
	elemRejectedNssai
	elemCipheringKeyData
	elemPayloadContainerType
	elemPayloadContainer
	elemPduSessionIdentity2
	elemRequestType
	elemServiceType
	elemMMNetworkFeatureSupport
	elemDeregistrationType
	elemIdentityType
	elemServiceAreaList
	elemLadnInformation
	elemAdditionalInformation
	elemConfigurationUpdateIndication
	elemNetworkName
	elemTimeZone
	elemTimeZoneAndTime
	elemDaylightSavingTime
	elemSmsIndication
	elemOperatorAccessCategories
	elemSorContainer
	elemDrxParameters
	elemUeStatus
	elemUpdateType5gs
	elemUeUsageSetting
	elemNasMessageContainer
	elemEpsNasMessageContainer
	elemEpsBearerContextStatus
	elemExtendedDrxParameters
	elemUeRadioCapabilityId
	elemMaPduSessionInformation
	elemReleaseAssistanceIndication
	elemEmergencyNumberList
	elemAccessType
	elemUeParametersUpdateContainer
	elemNssaaMessageContainer
	elemCagInformationList
	elemTruncated5GSTmsiConfig
	elemS1UeNetworkCapability
	elemMobileStationClassmark2
	elemSupportedCodecs
	elemControlPlaneServiceType
	elemLastVisitedTai
)

var mmIEs = map[ElemID]ieDescriptor{
	elemRegistrationType:              {name: "5GS registration type", size: halfOctet, decode: decodeRegistrationType},
	elemNgKsi:                         {name: "NAS key set identifier", size: halfOctet, decode: decodeNgKsi},
	elemMobileIdentity:                {name: "5GS mobile identity", decode: decodeMobileIdentity},
	elemMMCapability:                  {name: "5GMM capability", decode: decodeMMCapability},
	elemUeSecurityCapability:          {name: "UE security capability", decode: decodeUeSecurityCapability},
	elemMMCause:                       {name: "5GMM cause", size: 1, decode: decodeMMCause},
	elemSecurityAlgorithms:            {name: "NAS security algorithms", size: 1, decode: decodeSecurityAlgorithms},
	elemImeisvRequest:                 {name: "IMEISV request", size: halfOctet, decode: decodeImeisvRequest},
	elemAbba:                          {name: "ABBA"},
	elemAuthRand:                      {name: "Authentication parameter RAND", size: 16},
	elemAuthAutn:                      {name: "Authentication parameter AUTN"},
	elemAuthResponseParam:             {name: "Authentication response parameter"},
	elemAuthFailureParam:              {name: "Authentication failure parameter"},
	elemRegistrationResult:            {name: "5GS registration result", decode: decodeRegistrationResult},
	elemPsiBitmap:                     {name: "PDU session status", decode: decodePsiBitmap},
	elemMicoIndication:                {name: "MICO indication", size: halfOctet, decode: decodeMicoIndication},
	elemNetworkSlicingIndication:      {name: "Network slicing indication", size: halfOctet, decode: decodeNetworkSlicingIndication},
	elemNssaiInclusionMode:            {name: "NSSAI inclusion mode", size: halfOctet, decode: decodeNssaiInclusionMode},
	elemRejectedNssai:                 {name: "Rejected NSSAI", decode: decodeRejectedNssai},
	elemCipheringKeyData:              {name: "Ciphering key data", decode: decodeCipheringKeyData},
	elemPayloadContainerType:          {name: "Payload container type", size: halfOctet, decode: decodePayloadContainerType},
	elemPduSessionIdentity2:           {name: "PDU session identity 2", size: 1, decode: decodeValueOctet},
	elemRequestType:                   {name: "Request type", size: halfOctet, decode: decodeRequestType},
	elemServiceType:                   {name: "Service type", size: halfOctet, decode: decodeServiceType},
	elemMMNetworkFeatureSupport:       {name: "5GS network feature support", decode: decodeMMNetworkFeatureSupport},
	elemDeregistrationType:            {name: "De-registration type", size: halfOctet, decode: decodeDeregistrationType},
	elemIdentityType:                  {name: "Identity type", size: halfOctet, decode: decodeIdentityType},
	elemServiceAreaList:               {name: "Service area list", decode: decodeServiceAreaList},
	elemLadnInformation:               {name: "LADN information", decode: decodeLadnInformation},
	elemAdditionalInformation:         {name: "Additional information"},
	elemConfigurationUpdateIndication: {name: "Configuration update indication", size: halfOctet, decode: decodeValueOctet},
	elemNetworkName:                   {name: "Network name"},
	elemTimeZone:                      {name: "Local time zone", size: 1, decode: decodeValueOctet},
	elemTimeZoneAndTime:               {name: "Universal time and local time zone", size: 7, decode: decodeTimeZoneAndTime},
	elemDaylightSavingTime:            {name: "Network daylight saving time", decode: decodeValueFirstOctet},
	elemSmsIndication:                 {name: "SMS indication", size: halfOctet, decode: decodeValueOctet},
	elemOperatorAccessCategories:      {name: "Operator-defined access category definitions", decode: decodeNotYetDissected},
	elemSorContainer:                  {name: "SOR transparent container", decode: decodeNotYetDissected},
	elemDrxParameters:                 {name: "5GS DRX parameters", decode: decodeValueFirstOctet},
	elemUeStatus:                      {name: "UE status", decode: decodeUeStatus},
	elemUpdateType5gs:                 {name: "5GS update type", decode: decodeValueFirstOctet},
	elemUeUsageSetting:                {name: "UE's usage setting", decode: decodeValueFirstOctet},
	elemEpsNasMessageContainer:        {name: "EPS NAS message container", decode: decodeNotYetDissected},
	elemEpsBearerContextStatus:        {name: "EPS bearer context status"},
	elemExtendedDrxParameters:         {name: "Extended DRX parameters", decode: decodeValueFirstOctet},
	elemUeRadioCapabilityId:           {name: "UE radio capability ID"},
	elemMaPduSessionInformation:       {name: "MA PDU session information", size: halfOctet, decode: decodeValueOctet},
	elemReleaseAssistanceIndication:   {name: "Release assistance indication", size: halfOctet, decode: decodeValueOctet},
	elemEmergencyNumberList:           {name: "Emergency number list"},
	elemAccessType:                    {name: "Access type", size: halfOctet, decode: decodeValueOctet},
	elemUeParametersUpdateContainer:   {name: "UE parameters update transparent container", decode: decodeNotYetDissected},
	elemNssaaMessageContainer:         {name: "NSSAA message container"},
	elemCagInformationList:            {name: "CAG information list", decode: decodeNotYetDissected},
	elemTruncated5GSTmsiConfig:        {name: "Truncated 5G-S-TMSI configuration", decode: decodeValueFirstOctet},
	elemS1UeNetworkCapability:         {name: "S1 UE network capability"},
	elemMobileStationClassmark2:       {name: "Mobile station classmark 2"},
	elemSupportedCodecs:               {name: "Supported codecs"},
	elemControlPlaneServiceType:       {name: "Control plane service type", size: halfOctet, decode: decodeControlPlaneServiceType},
	elemLastVisitedTai:                {name: "Last visited registered TAI", size: 6, decode: decodeTai},
}

// Registered here, not in the literal above: both decoders re-enter the
// message decoder, which reads this catalog back through lookupIE.
func init() {
	mmIEs[elemPayloadContainer] = ieDescriptor{name: "Payload container", decode: decodePayloadContainer}
	mmIEs[elemNasMessageContainer] = ieDescriptor{name: "NAS message container", decode: decodeNasMessageContainer}
}

func decodeTai(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 6 {
		e.Fail(FailureMalformedLength, SeverityError, "TAI needs 6 octets, got %d", len(content))
		e.Raw = content
		return
	}
	e.Value = fmt.Sprintf("%s / %02x%02x%02x", plmnString(content[:3]), content[3], content[4], content[5])
}

var controlPlaneServiceTypeNames = map[byte]string{
	0: "mobile originating request",
	1: "mobile terminating request",
	2: "emergency services",
	3: "emergency services fallback",
}

func decodeControlPlaneServiceType(dc *decodeContext, content []byte, off int, e *Element) {
	name, ok := controlPlaneServiceTypeNames[content[0]&0x07]
	if !ok {
		name = fmt.Sprintf("unused (%d)", content[0]&0x07)
	}
	e.Value = name
}

// decodeValueOctet keeps a one-octet (or nibble) value as a number.
func decodeValueOctet(dc *decodeContext, content []byte, off int, e *Element) {
	e.Value = content[0]
}

// decodeValueFirstOctet is decodeValueOctet for length-prefixed
// elements that are effectively a single octet.
func decodeValueFirstOctet(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty value")
		return
	}
	e.Value = content[0]
	if len(content) > 1 {
		e.Raw = content[1:]
	}
}

// decodeNotYetDissected marks a recognized element whose internal
// layout is intentionally left to an external dissector.
func decodeNotYetDissected(dc *decodeContext, content []byte, off int, e *Element) {
	e.Raw = content
	e.Fail(FailureNotYetDissected, SeverityNote, "not dissected")
}

var registrationTypeNames = map[byte]string{
	1: "initial registration",
	2: "mobility registration updating",
	3: "periodic registration updating",
	4: "emergency registration",
	7: "reserved",
}

func decodeRegistrationType(dc *decodeContext, content []byte, off int, e *Element) {
	v := content[0]
	name, ok := registrationTypeNames[v&0x07]
	if !ok {
		name = fmt.Sprintf("unknown (%d)", v&0x07)
	}
	e.Value = name
	e.AddValue("Follow-on request pending", off, 1, v&0x08 != 0)
}

func decodeNgKsi(dc *decodeContext, content []byte, off int, e *Element) {
	v := content[0]
	id := v & 0x07
	if id == 7 {
		e.Value = "no key is available"
	} else {
		e.Value = id
	}
	tsc := "native security context"
	if v&0x08 != 0 {
		tsc = "mapped security context"
	}
	e.AddValue("Type of security context", off, 1, tsc)
}

// Mobile identity type values, TS 24.501 clause 9.11.3.4.
var mobileIdentityTypeNames = map[byte]string{
	0: "No identity",
	1: "SUCI",
	2: "5G-GUTI",
	3: "IMEI",
	4: "5G-S-TMSI",
	5: "IMEISV",
	6: "MAC address",
	7: "EUI-64",
}

var protectionSchemeNames = map[byte]string{
	0: "NULL scheme",
	1: "ECIES scheme profile A",
	2: "ECIES scheme profile B",
}

func decodeMobileIdentity(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty mobile identity")
		return
	}
	idType := content[0] & 0x07
	name, ok := mobileIdentityTypeNames[idType]
	if !ok {
		name = fmt.Sprintf("unknown (%d)", idType)
	}
	e.AddValue("Type of identity", off, 1, name)

	switch idType {
	case 1:
		decodeSuci(content, off, e)
	case 2:
		decodeGuti(content, off, e)
	case 3, 5:
		// IMEI / IMEISV: BCD digits, first digit in the type octet's
		// high nibble, odd/even in bit 4
		digits := fmt.Sprintf("%d", content[0]>>4) + bcdDigits(content[1:])
		e.AddValue("Digits", off, len(content), digits)
	case 4:
		if len(content) < 7 {
			e.Fail(FailureMalformedLength, SeverityError, "5G-S-TMSI needs 7 octets, got %d", len(content))
			e.Raw = content
			return
		}
		e.AddValue("AMF set ID", off+1, 2, uint16(content[1])<<2|uint16(content[2])>>6)
		e.AddValue("AMF pointer", off+2, 1, content[2]&0x3f)
		e.AddValue("5G-TMSI", off+3, 4, fmt.Sprintf("%02x%02x%02x%02x", content[3], content[4], content[5], content[6]))
	case 6:
		if len(content) < 7 {
			e.Fail(FailureMalformedLength, SeverityError, "MAC address needs 7 octets, got %d", len(content))
			e.Raw = content
			return
		}
		e.AddValue("MAC address", off+1, 6,
			fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
				content[1], content[2], content[3], content[4], content[5], content[6]))
	default:
		if len(content) > 1 {
			e.AddRaw("Identity value", off+1, content[1:])
		}
	}
}

func decodeSuci(content []byte, off int, e *Element) {
	supiFormat := (content[0] >> 4) & 0x07
	if supiFormat == 1 {
		// network specific identifier, NAI in the remaining octets
		e.AddValue("SUPI format", off, 1, "network specific identifier")
		e.AddValue("NAI", off+1, len(content)-1, string(content[1:]))
		return
	}
	e.AddValue("SUPI format", off, 1, "IMSI")
	if len(content) < 8 {
		e.Fail(FailureMalformedLength, SeverityError, "SUCI header needs 8 octets, got %d", len(content))
		e.Raw = content
		return
	}
	e.AddValue("PLMN", off+1, 3, plmnString(content[1:4]))
	e.AddValue("Routing indicator", off+4, 2, bcdDigits(content[4:6]))
	scheme := content[6] & 0x0f
	schemeName, ok := protectionSchemeNames[scheme]
	if !ok {
		schemeName = fmt.Sprintf("reserved (%d)", scheme)
	}
	e.AddValue("Protection scheme", off+6, 1, schemeName)
	e.AddValue("Home network public key identifier", off+7, 1, content[7])
	output := content[8:]
	if scheme == 0 {
		e.AddValue("MSIN", off+8, len(output), bcdDigits(output))
	} else {
		e.AddRaw("Scheme output", off+8, output)
	}
}

func decodeGuti(content []byte, off int, e *Element) {
	// type octet, PLMN, AMF region ID, AMF set ID + pointer, 5G-TMSI
	if len(content) < 11 {
		e.Fail(FailureMalformedLength, SeverityError, "5G-GUTI needs 11 octets, got %d", len(content))
		e.Raw = content
		return
	}
	e.AddValue("PLMN", off+1, 3, plmnString(content[1:4]))
	e.AddValue("AMF region ID", off+4, 1, content[4])
	e.AddValue("AMF set ID", off+5, 2, uint16(content[5])<<2|uint16(content[6])>>6)
	e.AddValue("AMF pointer", off+6, 1, content[6]&0x3f)
	e.AddValue("5G-TMSI", off+7, 4,
		fmt.Sprintf("%02x%02x%02x%02x", content[7], content[8], content[9], content[10]))
}

func decodeMMCause(dc *decodeContext, content []byte, off int, e *Element) {
	e.Value = fmt.Sprintf("%s (%d)", cause5GMMName(content[0]), content[0])
}

var nasAlgorithmNames = [2][8]string{
	{"5G-EA0", "128-5G-EA1", "128-5G-EA2", "128-5G-EA3", "5G-EA4", "5G-EA5", "5G-EA6", "5G-EA7"},
	{"5G-IA0", "128-5G-IA1", "128-5G-IA2", "128-5G-IA3", "5G-IA4", "5G-IA5", "5G-IA6", "5G-IA7"},
}

func decodeSecurityAlgorithms(dc *decodeContext, content []byte, off int, e *Element) {
	b := content[0]
	e.AddValue("Type of ciphering algorithm", off, 1, nasAlgorithmNames[0][b>>4&0x07])
	e.AddValue("Type of integrity protection algorithm", off, 1, nasAlgorithmNames[1][b&0x07])
}

func decodeImeisvRequest(dc *decodeContext, content []byte, off int, e *Element) {
	if content[0]&0x07 == 1 {
		e.Value = "IMEISV requested"
	} else {
		e.Value = "IMEISV not requested"
	}
}

var registrationResultNames = map[byte]string{
	1: "3GPP access",
	2: "Non-3GPP access",
	3: "3GPP access and non-3GPP access",
}

func decodeRegistrationResult(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty registration result")
		return
	}
	b := content[0]
	name, ok := registrationResultNames[b&0x07]
	if !ok {
		name = fmt.Sprintf("reserved (%d)", b&0x07)
	}
	e.Value = name
	e.AddValue("SMS over NAS allowed", off, 1, b&0x08 != 0)
	e.AddValue("NSSAA to be performed", off, 1, b&0x10 != 0)
}

// decodePsiBitmap expands the PDU-session-identity bitmaps shared by
// "PDU session status", "Uplink data status" and "Allowed PDU session
// status": octet i bit j set means PSI 8*i+j applies, PSI 0 spare.
func decodePsiBitmap(dc *decodeContext, content []byte, off int, e *Element) {
	var active []int
	for i, b := range content {
		for j := 0; j < 8; j++ {
			if b&(1<<j) != 0 {
				psi := 8*i + j
				if psi > 0 {
					active = append(active, psi)
				}
			}
		}
	}
	e.Value = active
}

func decodeMicoIndication(dc *decodeContext, content []byte, off int, e *Element) {
	e.AddValue("RAAI", off, 1, content[0]&0x01 != 0)
	e.AddValue("SPRTI", off, 1, content[0]&0x02 != 0)
}

func decodeNetworkSlicingIndication(dc *decodeContext, content []byte, off int, e *Element) {
	e.AddValue("NSSCI", off, 1, content[0]&0x01 != 0)
	e.AddValue("DCNI", off, 1, content[0]&0x02 != 0)
}

func decodeNssaiInclusionMode(dc *decodeContext, content []byte, off int, e *Element) {
	e.Value = string(rune('A' + content[0]&0x03))
}

var rejectedNssaiCauseNames = map[byte]string{
	0: "S-NSSAI not available in the current PLMN or SNPN",
	1: "S-NSSAI not available in the current registration area",
	2: "S-NSSAI not available due to the failed or revoked NSSAA",
}

// decodeRejectedNssai walks the rejected-slice list, TS 24.501 clause
// 9.11.3.46: per entry the first octet packs the entry length (high
// nibble) with the rejection cause (low nibble), then SST and optional SD.
func decodeRejectedNssai(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for i := 1; cur.Remaining() > 0; i++ {
		start := off + cur.Offset()
		head, _ := cur.ReadByte()
		entryLen := int(head >> 4)
		cause := head & 0x0f
		entry := e.Add(NewElement(fmt.Sprintf("Rejected S-NSSAI %d", i), start, 1))
		causeName, ok := rejectedNssaiCauseNames[cause]
		if !ok {
			causeName = fmt.Sprintf("unspecified (%d)", cause)
		}
		entry.AddValue("Cause", start, 1, causeName)
		body, ok2 := cur.ReadBytes(entryLen)
		if !ok2 {
			entry.Fail(FailureMalformedLength, SeverityError,
				"entry length %d exceeds remaining %d byte(s)", entryLen, cur.Remaining())
			return
		}
		entry.Length = 1 + entryLen
		decodeSNssaiContent(body, start+1, entry)
	}
}

// decodeCipheringKeyData walks ciphering data sets, TS 24.501 clause
// 9.11.3.18C: set ID, 128-bit key, C0, the two posSIB bitmaps, a BCD
// validity start time, a duration and a nested tracking area list.
func decodeCipheringKeyData(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		set := e.Add(NewElement(fmt.Sprintf("Ciphering data set %d", n), start, 0))

		id, ok := cur.ReadUint16()
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "truncated ciphering set ID")
			return
		}
		set.AddValue("Ciphering set ID", start, 2, id)

		key, ok := cur.ReadBytes(16)
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "truncated ciphering key")
			return
		}
		set.AddRaw("Ciphering key", start+2, key)

		c0Head, ok := cur.ReadByte()
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "truncated C0 length")
			return
		}
		c0Len := int(c0Head & 0x1f)
		c0Off := off + cur.Offset()
		c0, ok := cur.ReadBytes(c0Len)
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "C0 length %d exceeds remaining %d byte(s)", c0Len, cur.Remaining())
			return
		}
		if c0Len > 0 {
			set.AddRaw("C0", c0Off, c0)
		}

		for _, name := range []string{"E-UTRA posSIB types", "NR posSIB types"} {
			bmOff := off + cur.Offset()
			bitmap, ok := readLV(cur)
			if !ok {
				set.Fail(FailureMalformedLength, SeverityError, "truncated %s bitmap", name)
				return
			}
			set.AddRaw(name, bmOff, bitmap)
		}

		tsOff := off + cur.Offset()
		ts, ok := cur.ReadBytes(5)
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "truncated validity start time")
			return
		}
		set.AddValue("Validity start time", tsOff, 5,
			fmt.Sprintf("%s-%s-%s %s:%s",
				bcdDigits(ts[0:1]), bcdDigits(ts[1:2]), bcdDigits(ts[2:3]),
				bcdDigits(ts[3:4]), bcdDigits(ts[4:5])))

		dur, ok := cur.ReadUint16()
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "truncated validity duration")
			return
		}
		set.AddValue("Validity duration (minutes)", off+cur.Offset()-2, 2, dur)

		taiOff := off + cur.Offset()
		taiBytes, ok := readLV(cur)
		if !ok {
			set.Fail(FailureMalformedLength, SeverityError, "TAI list length exceeds remaining buffer")
			return
		}
		if len(taiBytes) > 0 {
			taiElem := set.Add(NewElement("5GS tracking area identity list", taiOff, 1+len(taiBytes)))
			decodeTaiList(dc, taiBytes, taiOff+1, taiElem)
		}
		set.Length = off + cur.Offset() - start
	}
}

func decodeUeSecurityCapability(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) < 2 {
		e.Fail(FailureMalformedLength, SeverityError, "UE security capability needs at least 2 octets")
		e.Raw = content
		return
	}
	for row, name := range []string{"5G-EA", "5G-IA"} {
		var algs []string
		for bit := 0; bit < 8; bit++ {
			if content[row]&(0x80>>bit) != 0 {
				algs = append(algs, nasAlgorithmNames[row][bit])
			}
		}
		e.AddValue(name, off+row, 1, algs)
	}
	if len(content) > 2 {
		e.AddRaw("EPS algorithms", off+2, content[2:])
	}
}

func decodeMMCapability(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty 5GMM capability")
		return
	}
	b := content[0]
	e.AddValue("S1 mode supported", off, 1, b&0x01 != 0)
	e.AddValue("Handover attach supported", off, 1, b&0x02 != 0)
	e.AddValue("LTE positioning protocol supported", off, 1, b&0x04 != 0)
	if len(content) > 1 {
		e.AddRaw("Additional capability octets", off+1, content[1:])
	}
}

func decodeMMNetworkFeatureSupport(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty network feature support")
		return
	}
	b := content[0]
	e.AddValue("IMS voice over PS session over 3GPP access", off, 1, b&0x01 != 0)
	e.AddValue("IMS voice over PS session over non-3GPP access", off, 1, b&0x02 != 0)
	e.AddValue("Emergency services", off, 1, (b>>2)&0x03)
	e.AddValue("Emergency services fallback", off, 1, (b>>4)&0x03)
	e.AddValue("Interworking without N26", off, 1, b&0x40 != 0)
	e.AddValue("MPS indicator", off, 1, b&0x80 != 0)
	if len(content) > 1 {
		e.AddRaw("Additional feature octets", off+1, content[1:])
	}
}

var requestTypeNames = map[byte]string{
	1: "initial request",
	2: "existing PDU session",
	3: "initial emergency request",
	4: "existing emergency PDU session",
	5: "modification request",
	6: "MA PDU request",
	7: "reserved",
}

func decodeRequestType(dc *decodeContext, content []byte, off int, e *Element) {
	name, ok := requestTypeNames[content[0]&0x07]
	if !ok {
		name = fmt.Sprintf("unknown (%d)", content[0]&0x07)
	}
	e.Value = name
}

var serviceTypeNames = map[byte]string{
	0: "signalling",
	1: "data",
	2: "mobile terminated services",
	3: "emergency services",
	4: "emergency services fallback",
	5: "high priority access",
	6: "elevated signalling",
}

func decodeServiceType(dc *decodeContext, content []byte, off int, e *Element) {
	name, ok := serviceTypeNames[content[0]&0x0f]
	if !ok {
		name = fmt.Sprintf("unused (%d)", content[0]&0x0f)
	}
	e.Value = name
}

var deregistrationAccessNames = map[byte]string{
	1: "3GPP access",
	2: "Non-3GPP access",
	3: "3GPP access and non-3GPP access",
}

func decodeDeregistrationType(dc *decodeContext, content []byte, off int, e *Element) {
	v := content[0]
	access, ok := deregistrationAccessNames[v&0x03]
	if !ok {
		access = "reserved"
	}
	e.Value = access
	e.AddValue("Re-registration required", off, 1, v&0x04 != 0)
	e.AddValue("Switch off", off, 1, v&0x08 != 0)
}

func decodeIdentityType(dc *decodeContext, content []byte, off int, e *Element) {
	name, ok := mobileIdentityTypeNames[content[0]&0x07]
	if !ok {
		name = fmt.Sprintf("unknown (%d)", content[0]&0x07)
	}
	e.Value = name
}

// decodeServiceAreaList is the allowed/non-allowed area variant of the
// partial-list walk, TS 24.501 clause 9.11.3.49. List type 3 carries a
// PLMN and covers all of its tracking areas.
func decodeServiceAreaList(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		head, _ := cur.ReadByte()
		listType := (head >> 5) & 0x03
		count := int(head&0x1f) + 1
		part := e.Add(NewElement(fmt.Sprintf("Partial service area list %d", n), start, 1))
		allowed := "non-allowed area"
		if head&0x80 != 0 {
			allowed = "allowed area"
		}
		part.AddValue("Area type", start, 1, allowed)

		switch listType {
		case 0, 1:
			plmn, ok := cur.ReadBytes(3)
			if !ok {
				part.Fail(FailureMalformedLength, SeverityError, "truncated PLMN")
				return
			}
			part.AddValue("PLMN", start+1, 3, plmnString(plmn))
			tacs := count
			if listType == 1 {
				tacs = 1
			}
			for i := 0; i < tacs; i++ {
				tacOff := off + cur.Offset()
				tac, ok := cur.ReadBytes(3)
				if !ok {
					part.Fail(FailureMalformedLength, SeverityError, "truncated TAC")
					return
				}
				part.AddValue("TAC", tacOff, 3, fmt.Sprintf("%06x", tac))
			}
		case 2:
			for i := 0; i < count; i++ {
				taiOff := off + cur.Offset()
				tai, ok := cur.ReadBytes(6)
				if !ok {
					part.Fail(FailureMalformedLength, SeverityError, "truncated TAI")
					return
				}
				part.AddValue("TAI", taiOff, 6,
					fmt.Sprintf("%s / %02x%02x%02x", plmnString(tai[:3]), tai[3], tai[4], tai[5]))
			}
		case 3:
			plmn, ok := cur.ReadBytes(3)
			if !ok {
				part.Fail(FailureMalformedLength, SeverityError, "truncated PLMN")
				return
			}
			part.AddValue("All TAIs of PLMN", start+1, 3, plmnString(plmn))
		}
		part.Length = off + cur.Offset() - start
	}
}

// decodeLadnInformation walks LADN entries: a DNN and the tracking
// areas it is available in, TS 24.501 clause 9.11.3.30.
func decodeLadnInformation(dc *decodeContext, content []byte, off int, e *Element) {
	cur := NewCursor(content)
	for n := 1; cur.Remaining() > 0; n++ {
		start := off + cur.Offset()
		ladn := e.Add(NewElement(fmt.Sprintf("LADN %d", n), start, 0))

		dnnOff := off + cur.Offset()
		dnn, ok := readLV(cur)
		if !ok {
			ladn.Fail(FailureMalformedLength, SeverityError, "DNN length exceeds remaining buffer")
			return
		}
		dnnElem := ladn.Add(NewElement("DNN", dnnOff, 1+len(dnn)))
		decodeDnn(dc, dnn, dnnOff+1, dnnElem)

		taiOff := off + cur.Offset()
		tai, ok := readLV(cur)
		if !ok {
			ladn.Fail(FailureMalformedLength, SeverityError, "TAI list length exceeds remaining buffer")
			return
		}
		taiElem := ladn.Add(NewElement("5GS tracking area identity list", taiOff, 1+len(tai)))
		decodeTaiList(dc, tai, taiOff+1, taiElem)

		ladn.Length = off + cur.Offset() - start
	}
}

func decodeUeStatus(dc *decodeContext, content []byte, off int, e *Element) {
	if len(content) == 0 {
		e.Fail(FailureMalformedLength, SeverityError, "empty UE status")
		return
	}
	e.AddValue("S1 mode registered", off, 1, content[0]&0x01 != 0)
	e.AddValue("N1 mode registered", off, 1, content[0]&0x02 != 0)
}

func decodeTimeZoneAndTime(dc *decodeContext, content []byte, off int, e *Element) {
	e.AddValue("Time", off, 6,
		fmt.Sprintf("20%s-%s-%s %s:%s:%s",
			bcdDigits(content[0:1]), bcdDigits(content[1:2]), bcdDigits(content[2:3]),
			bcdDigits(content[3:4]), bcdDigits(content[4:5]), bcdDigits(content[5:6])))
	e.AddValue("Time zone", off+6, 1, content[6])
}

// decodeNasMessageContainer re-enters the envelope decoder: the
// container carries a complete plain NAS message (the initial message
// retransmitted inside Security Mode Complete).
func decodeNasMessageContainer(dc *decodeContext, content []byte, off int, e *Element) {
	inner := decodeMessage(dc, content)
	offsetChildren(inner, off)
	inner.Offset = off
	e.Add(inner)
}
