package nas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ulTransport wraps container content into an UL NAS transport message
// declaring the given payload container type.
func ulTransport(containerType byte, content []byte) []byte {
	data := []byte{
		0x7e, 0x00, 0x67,
		containerType & 0x0f, // container type (low), spare (high)
		byte(len(content) >> 8), byte(len(content)),
	}
	return append(data, content...)
}

func TestPayloadContainerN1SM(t *testing.T) {
	inner := []byte{0x2e, 0x01, 0x02, 0xd6, 0x5f} // 5GSM status, cause 95
	tree, err := Decode(ulTransport(PayloadContainerN1SM, inner), Policy{})
	require.NoError(t, err)

	assert.Equal(t, "N1 SM information", tree.Find("Payload container type").Value)
	status := tree.Find("5GSM status")
	require.NotNil(t, status)
	assert.Equal(t, "Semantically incorrect message (95)", tree.Find("5GSM cause").Value)
}

func TestEmptyN1SMContainerIsMalformed(t *testing.T) {
	tree, err := Decode(ulTransport(PayloadContainerN1SM, nil), Policy{})
	require.NoError(t, err)

	inner := tree.Find("NAS-5GS message")
	require.NotNil(t, inner)
	assert.Equal(t, 0, inner.Length)
	require.Len(t, inner.Diags, 1)
	assert.Equal(t, FailureMalformedLength, inner.Diags[0].Kind)
	// a zero-length body must not grow leaves
	assert.Empty(t, inner.Children)
	assert.Nil(t, inner.Find("Extended protocol discriminator"))
}

func TestPayloadContainerTypeThreading(t *testing.T) {
	// SMS content stays opaque with a not-dissected note
	tree, err := Decode(ulTransport(PayloadContainerSMS, []byte{0x01, 0x02}), Policy{})
	require.NoError(t, err)

	sms := tree.Find("SMS")
	require.NotNil(t, sms)
	require.Len(t, sms.Diags, 1)
	assert.Equal(t, FailureNotYetDissected, sms.Diags[0].Kind)
	assert.Equal(t, []byte{0x01, 0x02}, sms.Raw)
}

func TestMultiplePayloadsWithEntry(t *testing.T) {
	innerSM := []byte{0x2e, 0x01, 0x02, 0xd6, 0x5f}
	entry := append([]byte{
		0x11,             // 1 optional IE, inner type N1 SM information
		0x58, 0x01, 0x07, // optional IE: 5GMM cause
	}, innerSM...)
	multi := append([]byte{
		0x01, // one entry
		byte(len(entry) >> 8), byte(len(entry)),
	}, entry...)

	tree, err := Decode(ulTransport(PayloadContainerMultiple, multi), Policy{})
	require.NoError(t, err)

	assert.Equal(t, byte(1), tree.Find("Number of entries").Value)
	e := tree.Find("Payload container entry 1")
	require.NotNil(t, e)
	cause := e.Find("5GMM cause")
	require.NotNil(t, cause)
	assert.Equal(t, []byte{0x07}, cause.Raw)
	assert.NotNil(t, e.Find("5GSM status"))
}

// nestedMultiple builds a multiple-payloads construct whose single entry
// is itself a multiple-payloads container, levels deep.
func nestedMultiple(levels int) []byte {
	content := []byte{0x00} // innermost: zero entries
	for i := 1; i < levels; i++ {
		entry := append([]byte{PayloadContainerMultiple}, content...)
		content = append([]byte{
			0x01,
			byte(len(entry) >> 8), byte(len(entry)),
		}, entry...)
	}
	return content
}

func TestMultiplePayloadsRecursionBounded(t *testing.T) {
	data := ulTransport(PayloadContainerMultiple, nestedMultiple(3))

	// message level + three container levels need a ceiling of 4
	tree, err := Decode(data, Policy{MaxDepth: 4})
	require.NoError(t, err)
	assert.False(t, tree.Failed(SeverityError))

	tree, err = Decode(data, Policy{MaxDepth: 3})
	require.NoError(t, err)
	require.True(t, tree.Failed(SeverityError))
	var found bool
	var walk func(e *Element)
	walk = func(e *Element) {
		for _, d := range e.Diags {
			if d.Kind == FailureRecursionLimitExceeded {
				found = true
			}
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(tree)
	assert.True(t, found, "the ceiling must surface as a diagnostic, not a panic")
}

func TestPayloadEntryCountBeyondBuffer(t *testing.T) {
	multi := []byte{
		0x02,             // two entries declared
		0x00, 0x01, 0x01, // only one present
	}
	tree, err := Decode(ulTransport(PayloadContainerMultiple, multi), Policy{})
	require.NoError(t, err)
	require.True(t, tree.Failed(SeverityError))
}

func TestCiotUserDataLabeling(t *testing.T) {
	tree, err := Decode(ulTransport(PayloadContainerCIoTUserData, []byte{0x45, 0x00}),
		Policy{UserData: UserDataIPv4})
	require.NoError(t, err)

	ud := tree.Find("User data (IPv4)")
	require.NotNil(t, ud)
	assert.Equal(t, []byte{0x45, 0x00}, ud.Raw)
}
