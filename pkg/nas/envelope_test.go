package nas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrationRequestBytes() []byte {
	return []byte{
		0x7e, 0x00, 0x41, // 5GMM, plain, registration request
		0x71,       // initial registration (low), ngKSI 7 (high)
		0x00, 0x0d, // mobile identity, LV-E length 13
		0x01,             // SUCI, SUPI format IMSI
		0x02, 0xf8, 0x39, // PLMN 208-93
		0x00, 0x00, // routing indicator 0000
		0x00,                         // protection scheme NULL
		0x00,                         // home network public key identifier
		0x00, 0x00, 0x00, 0x00, 0x10, // MSIN
	}
}

func TestDecodeRegistrationRequest(t *testing.T) {
	tree, err := Decode(registrationRequestBytes(), Policy{})
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.False(t, tree.Failed(SeverityWarning))

	msgType := tree.Find("Message type")
	require.NotNil(t, msgType)
	assert.Equal(t, "Registration request", msgType.Value)

	regType := tree.Find("5GS registration type")
	require.NotNil(t, regType)
	assert.Equal(t, "initial registration", regType.Value)

	ngKsi := tree.Find("NAS key set identifier")
	require.NotNil(t, ngKsi)
	assert.Equal(t, "no key is available", ngKsi.Value)

	identity := tree.Find("5GS mobile identity")
	require.NotNil(t, identity)
	idType := identity.Find("Type of identity")
	require.NotNil(t, idType)
	assert.Equal(t, "SUCI", idType.Value)
	assert.Equal(t, "208-93", identity.Find("PLMN").Value)
	assert.Equal(t, "NULL scheme", identity.Find("Protection scheme").Value)
	assert.Equal(t, "0000000001", identity.Find("MSIN").Value)
}

func TestDecodeIsIdempotent(t *testing.T) {
	data := registrationRequestBytes()

	first, err := Decode(data, Policy{})
	require.NoError(t, err)
	second, err := Decode(data, Policy{})
	require.NoError(t, err)

	j1, err := first.JSON()
	require.NoError(t, err)
	j2, err := second.JSON()
	require.NoError(t, err)
	assert.Equal(t, j1, j2)
}

func TestUnknownTagBecomesExtraneousData(t *testing.T) {
	base, err := Decode(registrationRequestBytes(), Policy{})
	require.NoError(t, err)

	tree, err := Decode(append(registrationRequestBytes(), 0xff), Policy{})
	require.NoError(t, err)

	extra := tree.Find("Extraneous data")
	require.NotNil(t, extra)
	require.Len(t, extra.Diags, 1)
	assert.Equal(t, FailureExtraneousData, extra.Diags[0].Kind)
	assert.Equal(t, SeverityNote, extra.Diags[0].Severity)
	assert.Equal(t, []byte{0xff}, extra.Raw)

	// everything before the trailing byte decodes identically
	assert.Equal(t, base.Find("5GS mobile identity").Children,
		tree.Find("5GS mobile identity").Children)
}

func TestTrailingBytesReportedAsExtraneous(t *testing.T) {
	// de-registration accept carries no information elements
	data := []byte{0x7e, 0x00, 0x46, 0xaa, 0xbb}
	tree, err := Decode(data, Policy{})
	require.NoError(t, err)

	extra := tree.Find("Extraneous data")
	require.NotNil(t, extra)
	require.Len(t, extra.Diags, 1)
	assert.Equal(t, FailureExtraneousData, extra.Diags[0].Kind)
	assert.Equal(t, []byte{0xaa, 0xbb}, extra.Raw)
}

func TestCipheredContentStaysOpaque(t *testing.T) {
	data := []byte{
		0x7e, 0x02, // integrity protected and ciphered
		0x01, 0x02, 0x03, 0x04, // MAC
		0x07,             // sequence number
		0xde, 0xad, 0xbe, // ciphered body
	}
	tree, err := Decode(data, Policy{})
	require.NoError(t, err)

	enc := tree.Find("Encrypted data")
	require.NotNil(t, enc)
	require.Len(t, enc.Diags, 1)
	assert.Equal(t, FailureEncryptedData, enc.Diags[0].Kind)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe}, enc.Raw)
	assert.Nil(t, tree.Find("Message type"), "protected body must not be dispatched")
}

func TestDecipherAsPlainDecodesInnerMessage(t *testing.T) {
	inner := []byte{0x7e, 0x00, 0x64, 0x5f} // 5GMM status, cause 95
	data := append([]byte{
		0x7e, 0x01, // integrity protected
		0x01, 0x02, 0x03, 0x04,
		0x07,
	}, inner...)

	tree, err := Decode(data, Policy{DecipherAsPlain: true})
	require.NoError(t, err)
	assert.Nil(t, tree.Find("Encrypted data"))

	status := tree.Find("5GMM status")
	require.NotNil(t, status)
	cause := tree.Find("5GMM cause")
	require.NotNil(t, cause)
	assert.Equal(t, "Semantically incorrect message (95)", cause.Value)
	// inner offsets are rebased into the outer buffer
	assert.Equal(t, 7, tree.Find("NAS-5GS message").Offset)
}

func TestUnknownMessageType(t *testing.T) {
	tree, err := Decode([]byte{0x7e, 0x00, 0x99}, Policy{})
	require.NoError(t, err)

	msgType := tree.Find("Message type")
	require.NotNil(t, msgType)
	require.Len(t, msgType.Diags, 1)
	assert.Equal(t, FailureUnknownMessageType, msgType.Diags[0].Kind)
}

func TestReservedMessageTypeKeptOpaque(t *testing.T) {
	tree, err := Decode([]byte{0x2e, 0x01, 0x02, 0xc4, 0xaa}, Policy{})
	require.NoError(t, err)

	msg := tree.Find("PDU session establishment complete")
	require.NotNil(t, msg)
	require.Len(t, msg.Diags, 1)
	assert.Equal(t, FailureNotYetDissected, msg.Diags[0].Kind)
	assert.Equal(t, []byte{0xaa}, msg.Raw)
}

func TestLegacyProtocolDiscriminator(t *testing.T) {
	tree, err := Decode([]byte{0x07, 0x41, 0x01}, Policy{})
	require.NoError(t, err)

	legacy := tree.Find("EPS mobility management (legacy)")
	require.NotNil(t, legacy)
	require.Len(t, legacy.Diags, 1)
	assert.Equal(t, FailureNotYetDissected, legacy.Diags[0].Kind)
}

func TestDecodeInputContract(t *testing.T) {
	_, err := Decode(nil, Policy{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Decode([]byte{0x7e}, Policy{})
	assert.ErrorIs(t, err, ErrShortInput)

	_, err = Decode([]byte{0x7e, 0x00}, Policy{MaxDepth: -1})
	assert.ErrorIs(t, err, ErrBadPolicy)
}

func TestMissingMandatoryElementIsAWarning(t *testing.T) {
	// registration request truncated before the mobile identity
	tree, err := Decode([]byte{0x7e, 0x00, 0x41, 0x71}, Policy{})
	require.NoError(t, err)

	identity := tree.Find("5GS mobile identity")
	require.NotNil(t, identity)
	require.Len(t, identity.Diags, 1)
	assert.Equal(t, FailureMissingMandatoryElement, identity.Diags[0].Kind)
	assert.Equal(t, SeverityWarning, identity.Diags[0].Severity)
}
