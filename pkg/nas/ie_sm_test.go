package nas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePduSessionEstablishmentAccept(t *testing.T) {
	data := []byte{
		0x2e, 0x01, 0x02, 0xc2, // 5GSM, PSI 1, PTI 2, establishment accept
		0x11,       // PDU session type IPv4 (low), SSC mode 1 (high)
		0x00, 0x09, // authorized QoS rules, LV-E length 9
		0x01, 0x00, 0x06, // rule 1, length 6
		0x21,             // create new QoS rule, 1 packet filter
		0x31, 0x01, 0x01, // filter: bidirectional, id 1, match-all
		0xff, // precedence
		0x09, // QFI 9
		0x06, // session AMBR, LV length 6
		0x06, 0x00, 0x01, // downlink: 1 x 1 Mbps
		0x06, 0x00, 0x02, // uplink: 2 x 1 Mbps
	}
	tree, err := Decode(data, Policy{})
	require.NoError(t, err)
	assert.False(t, tree.Failed(SeverityWarning))

	assert.Equal(t, "IPv4", tree.Find("Selected PDU session type").Value)
	assert.Equal(t, byte(1), tree.Find("Selected SSC mode").Value)

	rule := tree.Find("QoS rule 1")
	require.NotNil(t, rule)
	assert.Equal(t, "Create new QoS rule", rule.Find("Rule operation code").Value)
	assert.Equal(t, 1, rule.Find("Number of packet filters").Value)

	filter := rule.Find("Packet filter 1")
	require.NotNil(t, filter)
	assert.Equal(t, "bidirectional", filter.Find("Direction").Value)
	assert.NotNil(t, filter.Find("Match-all"))

	assert.Equal(t, byte(0xff), rule.Find("QoS rule precedence").Value)
	assert.Equal(t, byte(9), rule.Find("QFI").Value)

	ambr := tree.Find("Session-AMBR")
	require.NotNil(t, ambr)
	assert.Equal(t, "1 x 1 Mbps", ambr.Find("Downlink").Value)
	assert.Equal(t, "2 x 1 Mbps", ambr.Find("Uplink").Value)
}

func TestQosRuleDeleteWithFiltersIsRuleLocal(t *testing.T) {
	content := []byte{
		0x01, 0x00, 0x01, // rule 1, length 1
		0x41, // delete existing QoS rule, but 1 packet filter declared
		0x02, 0x00, 0x03, // rule 2, length 3
		0xc0,       // modify without modifying packet filters
		0x05, 0x01, // precedence 5, QFI 1
	}
	dc := &decodeContext{}
	root := NewElement("QoS rules", 0, len(content))
	decodeQosRules(dc, content, 0, root)

	require.Len(t, root.Children, 2, "the bad rule must not swallow the next one")

	bad := root.Children[0]
	require.NotEmpty(t, bad.Diags)
	assert.Equal(t, FailureMalformedValue, bad.Diags[0].Kind)
	assert.Equal(t, SeverityError, bad.Diags[0].Severity)

	good := root.Children[1]
	assert.Empty(t, good.Diags)
	assert.Equal(t, byte(5), good.Find("QoS rule precedence").Value)
	assert.Equal(t, byte(1), good.Find("QFI").Value)
}

func TestQosRuleLengthPastBufferAbortsList(t *testing.T) {
	content := []byte{
		0x01, 0x00, 0x10, // rule 1 claims 16 octets
		0x21, // only one remains
	}
	dc := &decodeContext{}
	root := NewElement("QoS rules", 0, len(content))
	decodeQosRules(dc, content, 0, root)

	require.Len(t, root.Children, 1)
	require.NotEmpty(t, root.Children[0].Diags)
	assert.Equal(t, FailureMalformedLength, root.Children[0].Diags[0].Kind)
}

func TestPacketFilterUnknownComponentStaysOpaque(t *testing.T) {
	content := []byte{
		0x01, 0x00, 0x08, // rule 1, length 8
		0x21,                   // create, 1 filter
		0x31, 0x03,             // filter: bidirectional id 1, length 3
		0x7f, 0xaa, 0xbb,       // unknown component type, remainder opaque
		0x01, 0x02,             // precedence, QFI
	}
	dc := &decodeContext{}
	root := NewElement("QoS rules", 0, len(content))
	decodeQosRules(dc, content, 0, root)

	filter := root.Find("Packet filter 1")
	require.NotNil(t, filter)
	unknown := filter.Find("Unknown component 0x7f")
	require.NotNil(t, unknown)
	assert.Equal(t, []byte{0xaa, 0xbb}, unknown.Raw)
	// the filter's declared length still bounds it: precedence and QFI follow
	assert.Equal(t, byte(1), root.Find("QoS rule precedence").Value)
}

func TestDecodePduAddress(t *testing.T) {
	e := NewElement("PDU address", 0, 5)
	decodePduAddress(nil, []byte{0x01, 0x0a, 0x00, 0x00, 0x01}, 0, e)
	assert.Equal(t, "10.0.0.1", e.Find("IPv4 address").Value)

	short := NewElement("PDU address", 0, 3)
	decodePduAddress(nil, []byte{0x01, 0x0a, 0x00}, 0, short)
	require.NotEmpty(t, short.Diags)
	assert.Equal(t, FailureMalformedLength, short.Diags[0].Kind)
}

func TestDecodeQosFlowDescriptions(t *testing.T) {
	content := []byte{
		0x05,       // QFI 5
		0x20,       // create
		0x41,       // E bit set, 1 parameter
		0x01, 0x01, 0x09, // 5QI = 9
	}
	e := NewElement("QoS flow descriptions", 0, len(content))
	decodeQosFlowDescriptions(nil, content, 0, e)

	desc := e.Find("QoS flow description 1")
	require.NotNil(t, desc)
	assert.Equal(t, byte(5), desc.Find("QFI").Value)
	assert.Equal(t, "Create new QoS flow description", desc.Find("Operation code").Value)
	fiveQi := desc.Find("5QI")
	require.NotNil(t, fiveQi)
	assert.Equal(t, []byte{0x09}, fiveQi.Raw)
}

func TestDecodeMappedEpsBearerContexts(t *testing.T) {
	content := []byte{
		0x50,       // EBI 5
		0x00, 0x04, // context length 4
		0x41,             // create new EPS bearer, 1 parameter
		0x01, 0x01, 0x09, // parameter 1
	}
	e := NewElement("Mapped EPS bearer contexts", 0, len(content))
	decodeMappedEpsBearerContexts(nil, content, 0, e)

	ctx := e.Find("Mapped EPS bearer context 1")
	require.NotNil(t, ctx)
	assert.Equal(t, byte(5), ctx.Find("EPS bearer identity").Value)
	assert.Equal(t, "Create new EPS bearer", ctx.Find("Operation code").Value)
	assert.NotNil(t, ctx.Find("EPS parameter 0x01"))
}

func TestDecodeEpco(t *testing.T) {
	content := []byte{
		0x80,       // ext bit, configuration protocol 0
		0x00, 0x0d, // container: DNS server IPv4 address request
		0x00,
		0x00, 0x10, // container with content
		0x02, 0xaa, 0xbb,
	}
	e := NewElement("Extended protocol configuration options", 0, len(content))
	decodeEpco(nil, content, 0, e)

	assert.NotNil(t, e.Find("Container 0x000d"))
	withContent := e.Find("Container 0x0010")
	require.NotNil(t, withContent)
	assert.Equal(t, []byte{0xaa, 0xbb}, withContent.Raw)
}
