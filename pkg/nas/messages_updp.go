package nas

// UE policy delivery message types, TS 24.501 table D.6.1.1.
const (
	MsgManageUePolicyCommand       = 0x01
	MsgManageUePolicyComplete      = 0x02
	MsgManageUePolicyCommandReject = 0x03
	MsgUeStateIndication           = 0x04
	MsgUePolicyProvisioningRequest = 0x05
	MsgUePolicyProvisioningReject  = 0x06
)

var updpMessages = map[byte]*msgDescriptor{
	MsgManageUePolicyCommand: {
		msgType: MsgManageUePolicyCommand, name: "Manage UE policy command",
		slots: []ieSlot{
			mand(elemPolicySectionManagementList, FormatLVE),
		},
	},
	MsgManageUePolicyComplete: {
		msgType: MsgManageUePolicyComplete, name: "Manage UE policy complete",
	},
	MsgManageUePolicyCommandReject: {
		msgType: MsgManageUePolicyCommandReject, name: "Manage UE policy command reject",
		slots: []ieSlot{
			mand(elemPolicySectionManagementResult, FormatLVE),
		},
	},
	MsgUeStateIndication: {
		msgType: MsgUeStateIndication, name: "UE state indication",
		slots: []ieSlot{
			mand(elemUpsiList, FormatLVE),
			mand(elemPolicyClassmark, FormatLV),
			opt(0x41, elemOsId, FormatTLV),
		},
	},

	// V2X policy provisioning, not dissected
	MsgUePolicyProvisioningRequest: {
		msgType: MsgUePolicyProvisioningRequest, name: "UE policy provisioning request", reserved: true,
	},
	MsgUePolicyProvisioningReject: {
		msgType: MsgUePolicyProvisioningReject, name: "UE policy provisioning reject", reserved: true,
	},
}
