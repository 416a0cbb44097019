package nas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// managePolicyCommand builds a manage-UE-policy-command message whose
// section list holds one PLMN sublist, one instruction and one URSP part.
func managePolicyCommand(t *testing.T) []byte {
	t.Helper()

	rsdBody := []byte{
		0x02,       // descriptor precedence
		0x01, 0x01, // SSC mode 1
		0x08, 0x01, // PDU session type IPv4
	}
	rsd := append([]byte{0x00, byte(len(rsdBody))}, rsdBody...)

	td := []byte{
		0x01,             // match-all
		0x90, 0x04, 0x03, 'w', 'e', 'b', // DNN
	}

	ruleBody := []byte{0x07} // rule precedence
	ruleBody = append(ruleBody, 0x00, byte(len(td)))
	ruleBody = append(ruleBody, td...)
	ruleBody = append(ruleBody, 0x00, byte(len(rsd)))
	ruleBody = append(ruleBody, rsd...)
	rule := append([]byte{0x00, byte(len(ruleBody))}, ruleBody...)

	partBody := append([]byte{0x01}, rule...) // URSP
	part := append([]byte{0x00, byte(len(partBody))}, partBody...)

	insBody := append([]byte{0x00, 0x2a}, part...) // UPSC 0x002a
	ins := append([]byte{0x00, byte(len(insBody))}, insBody...)

	subBody := append([]byte{0x02, 0xf8, 0x39}, ins...) // PLMN 208-93
	sub := append([]byte{0x00, byte(len(subBody))}, subBody...)

	msg := []byte{0x01, 0x01} // PTI, manage UE policy command
	msg = append(msg, 0x00, byte(len(sub)))
	msg = append(msg, sub...)
	return msg
}

func TestManageUePolicyCommandViaPayloadContainer(t *testing.T) {
	tree, err := Decode(ulTransport(PayloadContainerUEPolicy, managePolicyCommand(t)), Policy{})
	require.NoError(t, err)
	assert.False(t, tree.Failed(SeverityWarning))

	updp := tree.Find("UE policy delivery message")
	require.NotNil(t, updp)
	assert.Equal(t, "Manage UE policy command", updp.Find("Message type").Value)

	list := updp.Find("UE policy section management list")
	require.NotNil(t, list)
	assert.Equal(t, "208-93", list.Find("PLMN").Value)
	assert.Equal(t, "0x002a", list.Find("UPSC").Value)
	assert.Equal(t, "URSP", list.Find("Policy part type").Value)

	rule := list.Find("URSP rule 1")
	require.NotNil(t, rule)
	assert.Equal(t, byte(7), rule.Find("Precedence").Value)

	td := rule.Find("Traffic descriptor")
	require.NotNil(t, td)
	assert.NotNil(t, td.Find("Match-all"))
	dnn := td.Find("DNN")
	require.NotNil(t, dnn)
	assert.Equal(t, []byte{0x03, 'w', 'e', 'b'}, dnn.Raw)

	rsd := rule.Find("Route selection descriptor 1")
	require.NotNil(t, rsd)
	assert.Equal(t, byte(2), rsd.Find("Precedence").Value)
	ssc := rsd.Find("SSC mode")
	require.NotNil(t, ssc)
	assert.Equal(t, []byte{0x01}, ssc.Raw)
}

func TestUrspRuleLengthPastBufferAbortsList(t *testing.T) {
	content := []byte{0x00, 0x20, 0x01} // rule claims 32 octets
	e := NewElement("URSP", 0, len(content))
	decodeUrspRules(content, 0, e)

	rule := e.Find("URSP rule 1")
	require.NotNil(t, rule)
	require.NotEmpty(t, rule.Diags)
	assert.Equal(t, FailureMalformedLength, rule.Diags[0].Kind)
}

func TestNonUrspPartKeptOpaque(t *testing.T) {
	partBody := []byte{0x02, 0xaa, 0xbb} // ANDSP
	// instruction: UPSC 0x0007, then the part
	body := append([]byte{0x00, 0x07, 0x00, byte(len(partBody))}, partBody...)

	ins := NewElement("Instruction", 0, len(body))
	decodePolicyInstruction(body, 0, ins)

	part := ins.Find("Policy section part 1")
	require.NotNil(t, part)
	assert.Equal(t, "ANDSP", part.Find("Policy part type").Value)
	contents := part.Find("Policy part contents")
	require.NotNil(t, contents)
	assert.Equal(t, []byte{0xaa, 0xbb}, contents.Raw)
	require.Len(t, contents.Diags, 1)
	assert.Equal(t, FailureNotYetDissected, contents.Diags[0].Kind)
}

func TestDecodeUpsiList(t *testing.T) {
	content := []byte{
		0x00, 0x07, // sublist length 7
		0x02, 0xf8, 0x39, // PLMN 208-93
		0x00, 0x01, // UPSC 0x0001
		0x00, 0x2a, // UPSC 0x002a
	}
	e := NewElement("UPSI list", 0, len(content))
	decodeUpsiList(nil, content, 0, e)

	sub := e.Find("UPSI sublist 1")
	require.NotNil(t, sub)
	assert.Equal(t, "208-93", sub.Find("PLMN").Value)
	require.Len(t, sub.Children, 3)
	assert.Equal(t, "0x0001", sub.Children[1].Value)
	assert.Equal(t, "0x002a", sub.Children[2].Value)
}

func TestDecodePolicySectionResult(t *testing.T) {
	content := []byte{
		0x01,             // one result
		0x02, 0xf8, 0x39, // PLMN
		0x00, 0x2a, // UPSC
		0x00, 0x01, // failed instruction order
		0x6f, // protocol error, unspecified
	}
	e := NewElement("UE policy section management result", 0, len(content))
	decodePolicySectionResult(nil, content, 0, e)

	res := e.Find("Result 1")
	require.NotNil(t, res)
	assert.Equal(t, "0x002a", res.Find("UPSC").Value)
	assert.Equal(t, uint16(1), res.Find("Failed instruction order").Value)
	assert.Equal(t, "Protocol error, unspecified (111)", res.Find("Cause").Value)
}
