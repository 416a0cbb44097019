package nas

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGuti(t *testing.T) {
	content := []byte{
		0xf2,             // 5G-GUTI
		0x02, 0xf8, 0x39, // PLMN 208-93
		0x11,       // AMF region ID
		0x40, 0x41, // AMF set ID 257, pointer 1
		0xde, 0xad, 0xbe, 0xef, // 5G-TMSI
	}
	e := NewElement("5GS mobile identity", 0, len(content))
	decodeMobileIdentity(nil, content, 0, e)

	assert.Equal(t, "5G-GUTI", e.Find("Type of identity").Value)
	assert.Equal(t, "208-93", e.Find("PLMN").Value)
	assert.Equal(t, byte(0x11), e.Find("AMF region ID").Value)
	assert.Equal(t, uint16(257), e.Find("AMF set ID").Value)
	assert.Equal(t, byte(1), e.Find("AMF pointer").Value)
	assert.Equal(t, "deadbeef", e.Find("5G-TMSI").Value)
}

func TestDecodeImei(t *testing.T) {
	// IMEI 123456789012345, odd digit count
	content := []byte{0x13, 0x32, 0x54, 0x76, 0x98, 0x10, 0x32, 0x54}
	e := NewElement("5GS mobile identity", 0, len(content))
	decodeMobileIdentity(nil, content, 0, e)

	assert.Equal(t, "IMEI", e.Find("Type of identity").Value)
	assert.Equal(t, "123456789012345", e.Find("Digits").Value)
}

func TestDecodeNssai(t *testing.T) {
	content := []byte{
		0x01, 0x01, // S-NSSAI: SST only
		0x04, 0x02, 0x00, 0x00, 0x7b, // S-NSSAI: SST 2, SD 0x00007b
	}
	e := NewElement("NSSAI", 0, len(content))
	decodeNssai(nil, content, 0, e)

	require.Len(t, e.Children, 2)
	first := e.Children[0]
	assert.Equal(t, byte(1), first.Find("SST").Value)
	second := e.Children[1]
	assert.Equal(t, byte(2), second.Find("SST").Value)
	assert.Equal(t, "00007b", second.Find("SD").Value)
}

func TestDecodeTaiList(t *testing.T) {
	content := []byte{
		0x01,             // type 0, two TACs
		0x02, 0xf8, 0x39, // PLMN 208-93
		0x00, 0x00, 0x01,
		0x00, 0x00, 0x02,
	}
	e := NewElement("5GS tracking area identity list", 0, len(content))
	decodeTaiList(nil, content, 0, e)

	part := e.Find("Partial tracking area identity list 1")
	require.NotNil(t, part)
	assert.Equal(t, "208-93", part.Find("PLMN").Value)
	tacs := 0
	for _, c := range part.Children {
		if c.Name == "TAC" {
			tacs++
		}
	}
	assert.Equal(t, 2, tacs)
}

func TestDecodeRejectedNssai(t *testing.T) {
	content := []byte{
		0x11, 0x01, // 1-octet entry, cause: not available in registration area, SST 1
		0x40, 0x02, 0x00, 0x00, 0x7b, // 4-octet entry, cause: not available in PLMN
	}
	e := NewElement("Rejected NSSAI", 0, len(content))
	decodeRejectedNssai(nil, content, 0, e)

	require.Len(t, e.Children, 2)
	assert.Equal(t, "S-NSSAI not available in the current registration area",
		e.Children[0].Find("Cause").Value)
	assert.Equal(t, byte(1), e.Children[0].Find("SST").Value)
	assert.Equal(t, "00007b", e.Children[1].Find("SD").Value)
}

func TestDecodeRejectedNssaiTruncatedEntry(t *testing.T) {
	content := []byte{
		0x11, 0x01, // 1-octet entry, SST 1
		0x41, 0x02, // declares 4 octets, only one present
	}
	e := NewElement("Rejected NSSAI", 0, len(content))
	decodeRejectedNssai(nil, content, 0, e)

	require.Len(t, e.Children, 2)
	bad := e.Children[1]
	require.Len(t, bad.Diags, 1)
	assert.Equal(t, FailureMalformedLength, bad.Diags[0].Kind)
	// only the header octet was consumed, the span must not reach past
	// the buffer
	assert.Equal(t, 2, bad.Offset)
	assert.Equal(t, 1, bad.Length)
}

func TestDecodeCipheringKeyData(t *testing.T) {
	key := bytes.Repeat([]byte{0xa5}, 16)
	content := append([]byte{0x00, 0x01}, key...)
	content = append(content,
		0x02, 0xc0, 0xc1, // C0, 2 octets
		0x01, 0x80, // E-UTRA posSIB types
		0x01, 0x40, // NR posSIB types
		0x62, 0x80, 0x52, 0x01, 0x03, // validity start 26-08-25 10:30
		0x00, 0x3c, // 60 minutes
		0x07, // TAI list length
		0x00, 0x02, 0xf8, 0x39, 0x00, 0x00, 0x01,
	)
	e := NewElement("Ciphering key data", 0, len(content))
	decodeCipheringKeyData(nil, content, 0, e)

	require.Len(t, e.Children, 1)
	set := e.Children[0]
	assert.False(t, set.Failed(SeverityNote))
	assert.Equal(t, uint16(1), set.Find("Ciphering set ID").Value)
	assert.Equal(t, key, set.Find("Ciphering key").Raw)
	assert.Equal(t, []byte{0xc0, 0xc1}, set.Find("C0").Raw)
	assert.Equal(t, "26-08-25 10:30", set.Find("Validity start time").Value)
	assert.Equal(t, uint16(60), set.Find("Validity duration (minutes)").Value)
	tai := set.Find("5GS tracking area identity list")
	require.NotNil(t, tai)
	assert.Equal(t, "208-93", tai.Find("PLMN").Value)
	assert.Equal(t, len(content), set.Length)
}

func TestDecodeCipheringKeyDataTruncatedSet(t *testing.T) {
	// second set cut off inside the ciphering key
	content := append([]byte{0x00, 0x01}, bytes.Repeat([]byte{0xa5}, 16)...)
	content = append(content,
		0x00,       // no C0
		0x01, 0x80, // E-UTRA posSIB types
		0x01, 0x40, // NR posSIB types
		0x62, 0x80, 0x52, 0x01, 0x03,
		0x00, 0x3c,
		0x00,             // empty TAI list
		0x00, 0x02, 0xa5, // truncated second set
	)
	e := NewElement("Ciphering key data", 0, len(content))
	decodeCipheringKeyData(nil, content, 0, e)

	require.Len(t, e.Children, 2)
	assert.False(t, e.Children[0].Failed(SeverityWarning))
	bad := e.Children[1]
	require.Len(t, bad.Diags, 1)
	assert.Equal(t, FailureMalformedLength, bad.Diags[0].Kind)
	assert.Equal(t, SeverityError, bad.Diags[0].Severity)
}

func TestNasMessageContainerReentersDecoder(t *testing.T) {
	data := []byte{
		0x7e, 0x00, 0x5e, // security mode complete
		0x71, 0x00, 0x04, // NAS message container, TLV-E
		0x7e, 0x00, 0x64, 0x5f, // 5GMM status, cause 95
	}
	tree, err := Decode(data, Policy{})
	require.NoError(t, err)
	assert.False(t, tree.Failed(SeverityWarning))

	container := tree.Find("NAS message container")
	require.NotNil(t, container)
	inner := container.Find("NAS-5GS message")
	require.NotNil(t, inner)
	assert.Equal(t, 6, inner.Offset)
	assert.Equal(t, "Semantically incorrect message (95)",
		container.Find("5GMM cause").Value)
}

func TestDecodePsiBitmap(t *testing.T) {
	e := NewElement("PDU session status", 0, 2)
	decodePsiBitmap(nil, []byte{0x23, 0x01}, 0, e)
	// PSI 0 is spare; set bits 1, 5 in octet 0 and bit 0 of octet 1
	assert.Equal(t, []int{1, 5, 8}, e.Value)
}

func TestDecodeUeSecurityCapability(t *testing.T) {
	e := NewElement("UE security capability", 0, 2)
	decodeUeSecurityCapability(nil, []byte{0xf0, 0x70}, 0, e)

	ea := e.Find("5G-EA")
	require.NotNil(t, ea)
	assert.Equal(t, []string{"5G-EA0", "128-5G-EA1", "128-5G-EA2", "128-5G-EA3"}, ea.Value)
	ia := e.Find("5G-IA")
	require.NotNil(t, ia)
	assert.Equal(t, []string{"128-5G-IA1", "128-5G-IA2", "128-5G-IA3"}, ia.Value)
}

func TestDecodeServiceAreaList(t *testing.T) {
	content := []byte{
		0xe0,             // allowed area, type 3: all TAIs of the PLMN
		0x02, 0xf8, 0x39, // PLMN
	}
	e := NewElement("Service area list", 0, len(content))
	decodeServiceAreaList(nil, content, 0, e)

	part := e.Find("Partial service area list 1")
	require.NotNil(t, part)
	assert.Equal(t, "allowed area", part.Find("Area type").Value)
	assert.Equal(t, "208-93", part.Find("All TAIs of PLMN").Value)
}

func TestDecodeLadnInformation(t *testing.T) {
	content := []byte{
		0x04, 0x03, 'l', 'a', 'n', // DNN "lan"
		0x07, // TAI list length
		0x00, 0x02, 0xf8, 0x39, 0x00, 0x00, 0x01,
	}
	e := NewElement("LADN information", 0, len(content))
	decodeLadnInformation(nil, content, 0, e)

	ladn := e.Find("LADN 1")
	require.NotNil(t, ladn)
	assert.Equal(t, "lan", ladn.Find("DNN").Value)
	assert.Equal(t, "208-93", ladn.Find("PLMN").Value)
}

func TestDecodeDnn(t *testing.T) {
	e := NewElement("DNN", 0, 9)
	decodeDnn(nil, []byte{0x08, 'i', 'n', 't', 'e', 'r', 'n', 'e', 't'}, 0, e)
	assert.Equal(t, "internet", e.Value)

	multi := NewElement("DNN", 0, 8)
	decodeDnn(nil, []byte{0x03, 'i', 'm', 's', 0x03, 'm', 'n', 'c'}, 0, multi)
	assert.Equal(t, "ims.mnc", multi.Value)
}

func TestDecodeRegistrationAcceptWithOptionals(t *testing.T) {
	data := []byte{
		0x7e, 0x00, 0x42, // registration accept
		0x01, 0x01, // registration result: 3GPP access
		0x54, 0x07, // TAI list, TLV
		0x00, 0x02, 0xf8, 0x39, 0x00, 0x00, 0x01,
		0x15, 0x02, // allowed NSSAI, TLV
		0x01, 0x01,
		0x50, 0x02, // PDU session status, TLV
		0x02, 0x00,
	}
	tree, err := Decode(data, Policy{})
	require.NoError(t, err)
	assert.False(t, tree.Failed(SeverityWarning))

	assert.Equal(t, "3GPP access", tree.Find("5GS registration result").Value)
	assert.NotNil(t, tree.Find("5GS tracking area identity list"))
	nssai := tree.Find("Allowed NSSAI")
	require.NotNil(t, nssai)
	assert.Equal(t, byte(1), nssai.Find("SST").Value)
	status := tree.Find("PDU session status")
	require.NotNil(t, status)
	assert.Equal(t, []int{1}, status.Value)
}

func TestOptionalOrderIsFirstMatchWins(t *testing.T) {
	// the same tag cannot be consumed twice: a second 0x50 TLV after the
	// slot was used ends the optional phase and trails out
	data := []byte{
		0x7e, 0x00, 0x42,
		0x01, 0x01,
		0x50, 0x02, 0x02, 0x00,
		0x50, 0x02, 0x04, 0x00,
	}
	tree, err := Decode(data, Policy{})
	require.NoError(t, err)

	status := tree.Find("PDU session status")
	require.NotNil(t, status)
	assert.Equal(t, []int{1}, status.Value)

	extra := tree.Find("Extraneous data")
	require.NotNil(t, extra)
	assert.Equal(t, []byte{0x50, 0x02, 0x04, 0x00}, extra.Raw)
}
